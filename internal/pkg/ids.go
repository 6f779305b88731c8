package pkg

import "github.com/google/uuid"

// GenerateSessionID - generates a unique identifier for a game session.
func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateConnectionID - generates an identifier for a websocket connection, used only in logs.
func GenerateConnectionID() string {
	return uuid.New().String()[:8]
}
