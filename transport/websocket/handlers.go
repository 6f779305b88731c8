package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const internalErrorMessage = "internal error"

var (
	errSessionIDRequired   = errors.New("session_id is required")
	errCoordinatesRequired = errors.New("row and col are required")
)

func (that *Server) handleNewSession(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	log := that.logger.With("method", "handleNewSession")

	payloadReq, ok, err := that.decodePayload(conn, msg)
	if !ok {
		return err
	}

	mode, difficulty, err := entity.ParseSessionOptions(payloadReq.Mode, payloadReq.Difficulty)
	if err != nil {
		return that.sendErrorResponse(conn, msg.Action, err.Error(), nil)
	}

	session, err := that.manager.StartSession(ctx, mode, difficulty)
	if err != nil {
		return that.sendFailure(conn, msg.Action, err, nil)
	}

	log.Info("session created", "sessionID", session.ID)

	return that.sendMessage(conn, msg.Action, ResponsePayload{Session: session})
}

func (that *Server) handleMove(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, ok, err := that.decodePayload(conn, msg)
	if !ok {
		return err
	}

	if payloadReq.SessionID == "" {
		return that.sendErrorResponse(conn, msg.Action, errSessionIDRequired.Error(), nil)
	}

	if payloadReq.Row == nil || payloadReq.Col == nil {
		return that.sendErrorResponse(conn, msg.Action, errCoordinatesRequired.Error(), nil)
	}

	session, err := that.manager.MakeMove(ctx, payloadReq.SessionID, *payloadReq.Row, *payloadReq.Col)
	if err != nil {
		return that.sendFailure(conn, msg.Action, err, session)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Session: session})
}

func (that *Server) handleState(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, ok, err := that.decodePayload(conn, msg)
	if !ok {
		return err
	}

	if payloadReq.SessionID == "" {
		return that.sendErrorResponse(conn, msg.Action, errSessionIDRequired.Error(), nil)
	}

	session, err := that.manager.GetSession(ctx, payloadReq.SessionID)
	if err != nil {
		return that.sendFailure(conn, msg.Action, err, nil)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{Session: session})
}

func (that *Server) handleReset(ctx context.Context, msg *Message, conn *websocket.Conn) error {
	payloadReq, ok, err := that.decodePayload(conn, msg)
	if !ok {
		return err
	}

	if payloadReq.SessionID == "" {
		return that.sendErrorResponse(conn, msg.Action, errSessionIDRequired.Error(), nil)
	}

	if err = that.manager.ResetSession(ctx, payloadReq.SessionID); err != nil {
		return that.sendFailure(conn, msg.Action, err, nil)
	}

	return that.sendMessage(conn, msg.Action, ResponsePayload{SessionID: payloadReq.SessionID})
}

// decodePayload - reports ok=false when the payload was rejected; err is then
// only set if the rejection could not be written back.
func (that *Server) decodePayload(conn *websocket.Conn, msg *Message) (RequestPayload, bool, error) {
	var payloadReq RequestPayload

	if len(msg.Payload) == 0 {
		return payloadReq, true, nil
	}

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		that.logger.Warn("failed to unmarshal payload", "action", msg.Action, "error", err)
		return payloadReq, false, that.sendErrorResponse(conn, msg.Action, "invalid payload", nil)
	}

	return payloadReq, true, nil
}

// sendFailure - reports err to the client. Errors the client cannot act on are
// logged and replaced by a generic message.
func (that *Server) sendFailure(conn *websocket.Conn, action string, err error, session *entity.Session) error {
	if !isClientError(err) {
		that.logger.Error("request failed", "action", action, "error", err)
		return that.sendErrorResponse(conn, action, internalErrorMessage, nil)
	}

	return that.sendErrorResponse(conn, action, err.Error(), session)
}

func isClientError(err error) bool {
	return errors.Is(err, apperror.ErrSessionNotFound) ||
		errors.Is(err, apperror.ErrIllegalMove) ||
		errors.Is(err, apperror.ErrNotYourTurn) ||
		errors.Is(err, apperror.ErrNoLegalMove) ||
		errors.Is(err, entity.ErrUnknownMode) ||
		errors.Is(err, entity.ErrUnknownDifficulty) ||
		errors.Is(err, usecase.ErrDifficultyRequired) ||
		errors.Is(err, usecase.ErrDifficultyNotAllowed)
}
