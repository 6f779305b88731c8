package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	actionSessionNew   = "session:new"
	actionSessionMove  = "session:move"
	actionSessionState = "session:state"
	actionSessionReset = "session:reset"
)

// Message - represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	SessionID  string `json:"session_id,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Row        *int   `json:"row,omitempty"`
	Col        *int   `json:"col,omitempty"`
}

type ResponsePayload struct {
	Session   *entity.Session `json:"session,omitempty"`
	SessionID string          `json:"session_id,omitempty"`
	Error     string          `json:"error,omitempty"`
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: body}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *websocket.Conn, action, errorMessage string, session *entity.Session) error {
	return that.sendMessage(conn, action, ResponsePayload{Session: session, Error: errorMessage})
}
