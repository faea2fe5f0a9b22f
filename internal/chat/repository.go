package chat

import (
	"context"

	"campuschat/internal/chat/model"
)

type ChatRepository interface {
	FindInboxesForUser(ctx context.Context, userID string) ([]model.Inbox, error)
	FindInbox(ctx context.Context, inboxID int64) (*model.Inbox, error)
	// FindInboxBetween matches the unordered pair in either slot order.
	FindInboxBetween(ctx context.Context, userA, userB string) (*model.Inbox, error)
	// CreateInbox fails with ErrInboxExists when a concurrent caller already
	// created the pair's inbox.
	CreateInbox(ctx context.Context, userA, userB string) (*model.Inbox, error)

	// AppendMessage inserts the message and refreshes the inbox summary in a
	// single transaction.
	AppendMessage(ctx context.Context, inboxID int64, senderID, text string) (*model.Message, error)
	ListMessages(ctx context.Context, inboxID int64) ([]model.Message, error)
	FindMessage(ctx context.Context, messageID int64) (*model.Message, error)
	// DeleteMessage is idempotent; deleting an absent id is a no-op.
	DeleteMessage(ctx context.Context, messageID int64) error
}
