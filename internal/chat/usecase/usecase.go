package usecase

import (
	"context"
	"strings"
	"time"

	"campuschat/config"
	"campuschat/internal/chat"
	"campuschat/internal/chat/model"
	chatrepo "campuschat/internal/chat/repository"
	"campuschat/internal/user"
	userrepo "campuschat/internal/user/repository"
	"campuschat/pkg/errors"
	"campuschat/pkg/logger"
)

const defaultStoreTimeout = 5 * time.Second

// ConversationService is the membership-checked facade over the message
// store. It holds no state between calls; the store is the single source of
// truth, so any number of service/gateway instances can run side by side.
type ConversationService struct {
	repo   chat.ChatRepository
	users  user.UserRepository
	logger logger.Logger
	config config.Config
}

func NewConversationService(repo chat.ChatRepository, users user.UserRepository, logger logger.Logger, config config.Config) *ConversationService {
	return &ConversationService{repo: repo, users: users, logger: logger, config: config}
}

func (s *ConversationService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	d := s.config.Chat.StoreTimeout
	if d <= 0 {
		d = defaultStoreTimeout
	}
	return context.WithTimeout(ctx, d)
}

// mapStoreErr folds repository failures into the service taxonomy. Deadline
// expiry stays distinguishable so gateway callers can retry.
func mapStoreErr(err error) error {
	switch {
	case errors.Is(err, chatrepo.ErrInboxNotFound):
		return errors.ErrInboxNotFound
	case errors.Is(err, chatrepo.ErrMessageNotFound):
		return errors.ErrMessageNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return errors.ErrStoreTimeout(err)
	default:
		return errors.ErrStoreFailure(err)
	}
}

func (s *ConversationService) OpenConversation(ctx context.Context, requesterID string, inboxID int64) (*chat.ConversationDTO, error) {
	inbox, err := s.findInbox(ctx, inboxID)
	if err != nil {
		return nil, err
	}
	if !inbox.HasParticipant(requesterID) {
		return nil, errors.ErrNotParticipant
	}
	return s.buildConversation(ctx, requesterID, inbox)
}

func (s *ConversationService) StartOrResumeConversation(ctx context.Context, requesterID, otherUserID string) (*chat.ConversationDTO, error) {
	inbox, err := s.resolveInbox(ctx, requesterID, otherUserID)
	if err != nil {
		return nil, err
	}
	return s.buildConversation(ctx, requesterID, inbox)
}

// resolveInbox keeps a pair on a single inbox even under concurrent first
// contact: check, create, and on a lost race re-query and hand the caller
// the winner's inbox. The conflict never escapes this method.
func (s *ConversationService) resolveInbox(ctx context.Context, userA, userB string) (*model.Inbox, error) {
	if userA == userB {
		return nil, errors.ErrSelfConversation
	}

	fctx, cancel := s.storeCtx(ctx)
	inbox, err := s.repo.FindInboxBetween(fctx, userA, userB)
	cancel()
	if err == nil {
		return inbox, nil
	}
	if !errors.Is(err, chatrepo.ErrInboxNotFound) {
		return nil, mapStoreErr(err)
	}

	cctx, cancel := s.storeCtx(ctx)
	inbox, err = s.repo.CreateInbox(cctx, userA, userB)
	cancel()
	if err == nil {
		return inbox, nil
	}
	if !errors.Is(err, chatrepo.ErrInboxExists) {
		return nil, mapStoreErr(err)
	}

	// Lost the create race; the other caller's inbox is the right answer.
	rctx, cancel := s.storeCtx(ctx)
	defer cancel()
	inbox, err = s.repo.FindInboxBetween(rctx, userA, userB)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return inbox, nil
}

func (s *ConversationService) ListConversations(ctx context.Context, userID string) ([]chat.ConversationPreviewDTO, error) {
	fctx, cancel := s.storeCtx(ctx)
	inboxes, err := s.repo.FindInboxesForUser(fctx, userID)
	cancel()
	if err != nil {
		return nil, mapStoreErr(err)
	}

	otherIDs := make([]string, 0, len(inboxes))
	for i := range inboxes {
		otherIDs = append(otherIDs, inboxes[i].OtherParticipant(userID))
	}

	uctx, cancel := s.storeCtx(ctx)
	others, err := s.users.GetUsersByIDs(uctx, otherIDs)
	cancel()
	if err != nil {
		return nil, mapStoreErr(err)
	}
	byID := make(map[string]chat.ParticipantDTO, len(others))
	for _, u := range others {
		byID[u.ID] = chat.ParticipantDTO{ID: u.ID, Username: u.Username, DisplayName: u.Name, Avatar: u.Avatar}
	}

	previews := make([]chat.ConversationPreviewDTO, 0, len(inboxes))
	for i := range inboxes {
		inbox := &inboxes[i]
		otherID := inbox.OtherParticipant(userID)
		other, ok := byID[otherID]
		if !ok {
			other = chat.ParticipantDTO{ID: otherID}
		}
		p := chat.ConversationPreviewDTO{InboxID: inbox.ID, Other: other}
		if inbox.LastMessage != nil {
			p.LastMessage = *inbox.LastMessage
		}
		if inbox.LastSenderID != nil {
			p.LastSenderID = *inbox.LastSenderID
		}
		previews = append(previews, p)
	}
	return previews, nil
}

func (s *ConversationService) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) ([]chat.MessageDTO, error) {
	if strings.TrimSpace(cmd.Text) == "" {
		return nil, errors.ErrEmptyMessage
	}

	inbox, err := s.findInbox(ctx, cmd.InboxID)
	if err != nil {
		return nil, err
	}
	if !inbox.HasParticipant(cmd.SenderID) {
		return nil, errors.ErrNotParticipant
	}

	actx, cancel := s.storeCtx(ctx)
	_, err = s.repo.AppendMessage(actx, cmd.InboxID, cmd.SenderID, cmd.Text)
	cancel()
	if err != nil {
		s.logger.Error("failed to append message", "inbox_id", cmd.InboxID, "err", err)
		return nil, mapStoreErr(err)
	}

	return s.listMessages(ctx, cmd.InboxID)
}

func (s *ConversationService) DeleteMessage(ctx context.Context, cmd chat.DeleteMessageCommand) ([]chat.MessageDTO, error) {
	inbox, err := s.findInbox(ctx, cmd.InboxID)
	if err != nil {
		return nil, err
	}
	if !inbox.HasParticipant(cmd.RequesterID) {
		return nil, errors.ErrNotParticipant
	}

	fctx, cancel := s.storeCtx(ctx)
	msg, err := s.repo.FindMessage(fctx, cmd.MessageID)
	cancel()
	switch {
	case errors.Is(err, chatrepo.ErrMessageNotFound):
		// Already gone (or never existed): idempotent success, return the
		// list as-is.
		return s.listMessages(ctx, cmd.InboxID)
	case err != nil:
		return nil, mapStoreErr(err)
	}

	if msg.InboxID != cmd.InboxID {
		// Message lives in a different inbox; nothing to delete here.
		return s.listMessages(ctx, cmd.InboxID)
	}
	if !s.canDelete(cmd.RequesterID, msg) {
		return nil, errors.ErrNotMessageSender
	}

	dctx, cancel := s.storeCtx(ctx)
	err = s.repo.DeleteMessage(dctx, cmd.MessageID)
	cancel()
	if err != nil {
		s.logger.Error("failed to delete message", "message_id", cmd.MessageID, "err", err)
		return nil, mapStoreErr(err)
	}

	return s.listMessages(ctx, cmd.InboxID)
}

// canDelete gates message removal. Default policy is authorship-only; the
// AllowParticipantDelete flag widens it to any participant of the inbox.
func (s *ConversationService) canDelete(requesterID string, msg *model.Message) bool {
	if s.config.Chat.AllowParticipantDelete {
		return true
	}
	return msg.SenderID == requesterID
}

func (s *ConversationService) findInbox(ctx context.Context, inboxID int64) (*model.Inbox, error) {
	fctx, cancel := s.storeCtx(ctx)
	defer cancel()
	inbox, err := s.repo.FindInbox(fctx, inboxID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return inbox, nil
}

func (s *ConversationService) listMessages(ctx context.Context, inboxID int64) ([]chat.MessageDTO, error) {
	lctx, cancel := s.storeCtx(ctx)
	defer cancel()
	messages, err := s.repo.ListMessages(lctx, inboxID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	dtos := make([]chat.MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, chat.MessageDTO{
			ID:       m.ID,
			InboxID:  m.InboxID,
			SenderID: m.SenderID,
			Text:     m.Content,
			SentAt:   m.SentAt,
		})
	}
	return dtos, nil
}

func (s *ConversationService) buildConversation(ctx context.Context, requesterID string, inbox *model.Inbox) (*chat.ConversationDTO, error) {
	messages, err := s.listMessages(ctx, inbox.ID)
	if err != nil {
		return nil, err
	}

	otherID := inbox.OtherParticipant(requesterID)
	other := chat.ParticipantDTO{ID: otherID}

	uctx, cancel := s.storeCtx(ctx)
	u, err := s.users.GetUserByID(uctx, otherID)
	cancel()
	switch {
	case errors.Is(err, userrepo.ErrUserNotFound):
		// Participant rows outlive account deletions; degrade to the bare id.
		s.logger.Warn("participant missing from user directory", "user_id", otherID)
	case err != nil:
		return nil, mapStoreErr(err)
	default:
		other = chat.ParticipantDTO{ID: u.ID, Username: u.Username, DisplayName: u.Name, Avatar: u.Avatar}
	}

	return &chat.ConversationDTO{
		InboxID:  inbox.ID,
		Other:    other,
		Messages: messages,
	}, nil
}
