package gateway

import "campuschat/internal/chat"

// Event names on the socket channel. "join"/"leave" scope a connection to
// an inbox so broadcasts reach participants only.
const (
	EventJoin          = "join"
	EventLeave         = "leave"
	EventChatMessage   = "chat message"
	EventDeleteMessage = "delete message"

	EventNewMessage = "new message"
	EventError      = "error"
)

// ClientEvent is what a connected client sends. UserID is accepted on the
// wire for backward compatibility but never trusted; identity comes from the
// session the connection was bound to at upgrade time.
type ClientEvent struct {
	Event     string `json:"event"`
	InboxID   int64  `json:"inboxID,omitempty"`
	MessageID int64  `json:"messageID,omitempty"`
	Message   string `json:"message,omitempty"`
	UserID    string `json:"userID,omitempty"`
}

type ServerEvent struct {
	Event    string            `json:"event"`
	InboxID  int64             `json:"inboxID,omitempty"`
	Messages []chat.MessageDTO `json:"messages,omitempty"`

	// Error events only, delivered to the originating connection
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`

	// Relay bookkeeping so an instance skips its own republished broadcasts
	Origin string `json:"origin,omitempty"`
}
