package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages sent to spectators
type MessageType string

const (
	MessageTypeGameState MessageType = "gameState"
	MessageTypePing      MessageType = "ping"
	MessageTypePong      MessageType = "pong"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
