package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type handlers struct {
	logger  *slog.Logger
	manager sessionManager
}

type createSessionRequest struct {
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty,omitempty"`
}

type moveRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

type errorResponse struct {
	Error   string          `json:"error"`
	Session *entity.Session `json:"session,omitempty"`
}

var errMissingCoordinates = errors.New("row and col are required")

func (that *handlers) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	mode, difficulty, err := entity.ParseSessionOptions(req.Mode, req.Difficulty)
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	session, err := that.manager.StartSession(r.Context(), mode, difficulty)
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

func (that *handlers) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := that.manager.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err, nil)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (that *handlers) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := that.manager.ResetSession(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *handlers) makeMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if req.Row == nil || req.Col == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errMissingCoordinates.Error()})
		return
	}

	session, err := that.manager.MakeMove(r.Context(), chi.URLParam(r, "id"), *req.Row, *req.Col)
	if err != nil {
		that.writeError(w, err, session)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

func (that *handlers) writeError(w http.ResponseWriter, err error, session *entity.Session) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
		writeJSON(w, status, errorResponse{Error: http.StatusText(status)})
		return
	}

	writeJSON(w, status, errorResponse{Error: err.Error(), Session: session})
}

// StatusFor - maps engine errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrNoLegalMove):
		return http.StatusConflict
	case errors.Is(err, entity.ErrUnknownMode),
		errors.Is(err, entity.ErrUnknownDifficulty),
		errors.Is(err, usecase.ErrDifficultyRequired),
		errors.Is(err, usecase.ErrDifficultyNotAllowed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
