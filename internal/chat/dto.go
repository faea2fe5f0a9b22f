package chat

import "time"

// NOTE: commands travel from handler/gateway to usecase
// Note: DTOs travel from usecase to handler/gateway
// Input commands
type SendMessageCommand struct {
	InboxID  int64
	SenderID string
	Text     string
}

type DeleteMessageCommand struct {
	MessageID   int64
	InboxID     int64
	RequesterID string
}

// Output DTOs
type ParticipantDTO struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Avatar      string `json:"avatar"`
}

type MessageDTO struct {
	ID       int64     `json:"id"`
	InboxID  int64     `json:"inboxID"`
	SenderID string    `json:"senderID"`
	Text     string    `json:"text"`
	SentAt   time.Time `json:"sentAt"`
}

type ConversationDTO struct {
	InboxID  int64          `json:"inboxID"`
	Other    ParticipantDTO `json:"other"`
	Messages []MessageDTO   `json:"messages"`
}

type ConversationPreviewDTO struct {
	InboxID      int64          `json:"inboxID"`
	Other        ParticipantDTO `json:"other"`
	LastMessage  string         `json:"lastMessage"`
	LastSenderID string         `json:"lastSenderID"`
}
