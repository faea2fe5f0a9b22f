package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"campuschat/internal/chat/model"
	"campuschat/pkg/logger"
)

type ChatRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrInboxNotFound   = errors.New("inbox not found")
	ErrMessageNotFound = errors.New("message not found")
	// ErrInboxExists reports that a concurrent create won the pair's unique
	// index. The resolver recovers from it by re-querying.
	ErrInboxExists = errors.New("inbox already exists for this pair")
)

func NewChatRepository(db *bun.DB, logger logger.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: &logger,
	}
}

// InitSchema creates the chat tables and the unordered-pair unique index.
func (r *ChatRepository) InitSchema(ctx context.Context) error {
	tables := []any{
		(*model.Inbox)(nil),
		(*model.Message)(nil),
	}
	for _, t := range tables {
		if _, err := r.db.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			return errors.Wrapf(err, "chatRepo.InitSchema.CreateTable %T", t)
		}
	}
	// Rows are stored with user1_id < user2_id, so a plain composite index
	// enforces one inbox per unordered pair.
	_, err := r.db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_inbox_pair ON inboxes (user1_id, user2_id)`)
	if err != nil {
		return errors.Wrap(err, "chatRepo.InitSchema.CreateIndex")
	}
	_, err = r.db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_message_inbox ON messages (inbox_id, sent_at, id)`)
	if err != nil {
		return errors.Wrap(err, "chatRepo.InitSchema.CreateMessageIndex")
	}
	return nil
}

func (r *ChatRepository) FindInboxesForUser(ctx context.Context, userID string) ([]model.Inbox, error) {
	var inboxes []model.Inbox
	err := r.db.NewSelect().
		Model(&inboxes).
		Where("user1_id = ? OR user2_id = ?", userID, userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.FindInboxesForUser.Scan: ")
	}
	return inboxes, nil
}

func (r *ChatRepository) FindInbox(ctx context.Context, inboxID int64) (*model.Inbox, error) {
	inbox := new(model.Inbox)
	err := r.db.NewSelect().Model(inbox).Where("i.id = ?", inboxID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInboxNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.FindInbox.Scan: ")
	}
	return inbox, nil
}

func (r *ChatRepository) FindInboxBetween(ctx context.Context, userA, userB string) (*model.Inbox, error) {
	u1, u2 := model.NormalizePair(userA, userB)
	inbox := new(model.Inbox)
	err := r.db.NewSelect().
		Model(inbox).
		Where("user1_id = ? AND user2_id = ?", u1, u2).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInboxNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.FindInboxBetween.Scan: ")
	}
	return inbox, nil
}

func (r *ChatRepository) CreateInbox(ctx context.Context, userA, userB string) (*model.Inbox, error) {
	u1, u2 := model.NormalizePair(userA, userB)
	inbox := &model.Inbox{User1ID: u1, User2ID: u2}
	_, err := r.db.NewInsert().Model(inbox).Returning("*").Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
			return nil, ErrInboxExists
		}
		return nil, errors.Wrap(err, "chatRepo.CreateInbox.Insert: ")
	}
	return inbox, nil
}

func (r *ChatRepository) AppendMessage(ctx context.Context, inboxID int64, senderID, text string) (*model.Message, error) {
	msg := &model.Message{
		InboxID:  inboxID,
		SenderID: senderID,
		Content:  text,
	}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(msg).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "append.insertMessage")
		}

		_, err := tx.NewUpdate().
			Model((*model.Inbox)(nil)).
			Set("last_message = ?", text).
			Set("last_sender_id = ?", senderID).
			Where("id = ?", inboxID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "append.updateSummary")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (r *ChatRepository) ListMessages(ctx context.Context, inboxID int64) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.NewSelect().
		Model(&messages).
		Where("inbox_id = ?", inboxID).
		Order("sent_at ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListMessages.Scan: ")
	}
	return messages, nil
}

func (r *ChatRepository) FindMessage(ctx context.Context, messageID int64) (*model.Message, error) {
	msg := new(model.Message)
	err := r.db.NewSelect().Model(msg).Where("m.id = ?", messageID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		return nil, errors.Wrap(err, "chatRepo.FindMessage.Scan: ")
	}
	return msg, nil
}

func (r *ChatRepository) DeleteMessage(ctx context.Context, messageID int64) error {
	// Idempotent: zero rows affected is still success.
	_, err := r.db.NewDelete().
		Model((*model.Message)(nil)).
		Where("id = ?", messageID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.DeleteMessage.Exec: ")
	}
	return nil
}
