package chat

import "context"

type ChatUsecase interface {
	// OpenConversation loads an inbox with its full ordered history and the
	// other participant's display metadata. Membership is enforced.
	OpenConversation(ctx context.Context, requesterID string, inboxID int64) (*ConversationDTO, error)

	// StartOrResumeConversation finds or atomically creates the single inbox
	// between the requester and the other user, then behaves as
	// OpenConversation.
	StartOrResumeConversation(ctx context.Context, requesterID, otherUserID string) (*ConversationDTO, error)

	// ListConversations returns the requester's inboxes enriched with the
	// other participant and last-message summary.
	ListConversations(ctx context.Context, userID string) ([]ConversationPreviewDTO, error)

	// SendMessage appends to the inbox and returns the updated full ordered
	// message list.
	SendMessage(ctx context.Context, cmd SendMessageCommand) ([]MessageDTO, error)

	// DeleteMessage removes the message (idempotent) and returns the updated
	// full ordered message list.
	DeleteMessage(ctx context.Context, cmd DeleteMessageCommand) ([]MessageDTO, error)
}
