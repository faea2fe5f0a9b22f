package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuschat/config"
	"campuschat/internal/chat"
	chatmocks "campuschat/internal/chat/mocks"
	"campuschat/internal/chat/model"
	chatrepo "campuschat/internal/chat/repository"
	usermocks "campuschat/internal/user/mocks"
	usermodel "campuschat/internal/user/model"
	userrepo "campuschat/internal/user/repository"
	appErrors "campuschat/pkg/errors"
	"campuschat/pkg/logger"
)

func newService(t *testing.T, cfg config.Config) (*ConversationService, *chatmocks.MockChatRepository, *usermocks.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := chatmocks.NewMockChatRepository(ctrl)
	users := usermocks.NewMockUserRepository(ctrl)
	log, _ := logger.NewLogger(&cfg)
	return NewConversationService(repo, users, *log, cfg), repo, users
}

func strPtr(s string) *string { return &s }

var (
	aliceBobInbox = model.Inbox{ID: 7, User1ID: "alice", User2ID: "bob"}

	bobUser = usermodel.User{ID: "bob", Username: "bob", Name: "Bob", Avatar: "uploads/bob.png"}

	hiYoHistory = []model.Message{
		{ID: 1, InboxID: 7, SenderID: "alice", Content: "hi", SentAt: time.Unix(100, 0)},
		{ID: 2, InboxID: 7, SenderID: "bob", Content: "yo", SentAt: time.Unix(101, 0)},
	}
)

func TestStartOrResumeConversation(t *testing.T) {
	cfg := config.Config{}

	t.Run("sad path - self conversation rejected", func(t *testing.T) {
		uc, _, _ := newService(t, cfg)

		conv, err := uc.StartOrResumeConversation(context.Background(), "alice", "alice")
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrSelfConversation, err)
		assert.Nil(t, conv)
	})

	t.Run("happy path - existing inbox resumed", func(t *testing.T) {
		uc, repo, users := newService(t, cfg)
		inbox := aliceBobInbox

		g := repo.EXPECT()
		g.FindInboxBetween(gomock.Any(), "alice", "bob").Return(&inbox, nil)
		g.ListMessages(gomock.Any(), inbox.ID).Return(hiYoHistory, nil)
		users.EXPECT().GetUserByID(gomock.Any(), "bob").Return(&bobUser, nil)

		conv, err := uc.StartOrResumeConversation(context.Background(), "alice", "bob")
		require.NoError(t, err)
		assert.Equal(t, inbox.ID, conv.InboxID)
		assert.Equal(t, "Bob", conv.Other.DisplayName)
		require.Len(t, conv.Messages, 2)
		assert.Equal(t, "hi", conv.Messages[0].Text)
		assert.Equal(t, "yo", conv.Messages[1].Text)
	})

	t.Run("happy path - first contact creates the inbox", func(t *testing.T) {
		uc, repo, users := newService(t, cfg)
		inbox := aliceBobInbox

		g := repo.EXPECT()
		g.FindInboxBetween(gomock.Any(), "alice", "bob").Return(nil, chatrepo.ErrInboxNotFound)
		g.CreateInbox(gomock.Any(), "alice", "bob").Return(&inbox, nil)
		g.ListMessages(gomock.Any(), inbox.ID).Return(nil, nil)
		users.EXPECT().GetUserByID(gomock.Any(), "bob").Return(&bobUser, nil)

		conv, err := uc.StartOrResumeConversation(context.Background(), "alice", "bob")
		require.NoError(t, err)
		assert.Equal(t, inbox.ID, conv.InboxID)
		assert.Empty(t, conv.Messages)
	})

	t.Run("lost create race returns the winner's inbox", func(t *testing.T) {
		uc, repo, users := newService(t, cfg)
		winner := aliceBobInbox

		g := repo.EXPECT()
		g.FindInboxBetween(gomock.Any(), "bob", "alice").Return(nil, chatrepo.ErrInboxNotFound)
		g.CreateInbox(gomock.Any(), "bob", "alice").Return(nil, chatrepo.ErrInboxExists)
		g.FindInboxBetween(gomock.Any(), "bob", "alice").Return(&winner, nil)
		g.ListMessages(gomock.Any(), winner.ID).Return(nil, nil)
		users.EXPECT().GetUserByID(gomock.Any(), "alice").Return(&usermodel.User{ID: "alice", Username: "alice", Name: "Alice"}, nil)

		conv, err := uc.StartOrResumeConversation(context.Background(), "bob", "alice")
		require.NoError(t, err)
		assert.Equal(t, winner.ID, conv.InboxID)
	})
}

func TestOpenConversation(t *testing.T) {
	cfg := config.Config{}

	t.Run("happy path - participant with enrichment", func(t *testing.T) {
		uc, repo, users := newService(t, cfg)
		inbox := aliceBobInbox

		g := repo.EXPECT()
		g.FindInbox(gomock.Any(), inbox.ID).Return(&inbox, nil)
		g.ListMessages(gomock.Any(), inbox.ID).Return(hiYoHistory, nil)
		users.EXPECT().GetUserByID(gomock.Any(), "bob").Return(&bobUser, nil)

		conv, err := uc.OpenConversation(context.Background(), "alice", inbox.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob", conv.Other.ID)
		assert.Equal(t, "uploads/bob.png", conv.Other.Avatar)
		assert.Equal(t, []string{"hi", "yo"}, []string{conv.Messages[0].Text, conv.Messages[1].Text})
		assert.Equal(t, "alice", conv.Messages[0].SenderID)
		assert.Equal(t, "bob", conv.Messages[1].SenderID)
	})

	t.Run("sad path - unknown inbox", func(t *testing.T) {
		uc, repo, _ := newService(t, cfg)

		repo.EXPECT().FindInbox(gomock.Any(), int64(99)).Return(nil, chatrepo.ErrInboxNotFound)

		conv, err := uc.OpenConversation(context.Background(), "alice", 99)
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrInboxNotFound, err)
		assert.Nil(t, conv)
	})

	t.Run("sad path - non-participant is rejected without reads", func(t *testing.T) {
		uc, repo, _ := newService(t, cfg)
		inbox := aliceBobInbox

		repo.EXPECT().FindInbox(gomock.Any(), inbox.ID).Return(&inbox, nil)

		conv, err := uc.OpenConversation(context.Background(), "carol", inbox.ID)
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrNotParticipant, err)
		assert.Equal(t, appErrors.CodePermissionDenied, appErrors.CodeOf(err))
		assert.Nil(t, conv)
	})

	t.Run("missing directory entry degrades to the bare id", func(t *testing.T) {
		uc, repo, users := newService(t, cfg)
		inbox := aliceBobInbox

		g := repo.EXPECT()
		g.FindInbox(gomock.Any(), inbox.ID).Return(&inbox, nil)
		g.ListMessages(gomock.Any(), inbox.ID).Return(nil, nil)
		users.EXPECT().GetUserByID(gomock.Any(), "bob").Return(nil, userrepo.ErrUserNotFound)

		conv, err := uc.OpenConversation(context.Background(), "alice", inbox.ID)
		require.NoError(t, err)
		assert.Equal(t, "bob", conv.Other.ID)
		assert.Empty(t, conv.Other.DisplayName)
	})
}

func TestSendMessage(t *testing.T) {
	cfg := config.Config{}

	t.Run("sad path - blank text rejected before any store call", func(t *testing.T) {
		uc, _, _ := newService(t, cfg)

		for _, text := range []string{"", "   ", "\n\t"} {
			msgs, err := uc.SendMessage(context.Background(), chat.SendMessageCommand{InboxID: 7, SenderID: "alice", Text: text})
			require.Error(t, err)
			assert.Equal(t, appErrors.ErrEmptyMessage, err)
			assert.Nil(t, msgs)
		}
	})

	t.Run("sad path - non-participant sender", func(t *testing.T) {
		uc, repo, _ := newService(t, cfg)
		inbox := aliceBobInbox

		repo.EXPECT().FindInbox(gomock.Any(), inbox.ID).Return(&inbox, nil)

		msgs, err := uc.SendMessage(context.Background(), chat.SendMessageCommand{InboxID: inbox.ID, SenderID: "carol", Text: "hey"})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrNotParticipant, err)
		assert.Nil(t, msgs)
	})

	t.Run("happy path - returns the full ordered list", func(t *testing.T) {
		uc, repo, _ := newService(t, cfg)
		inbox := aliceBobInbox

		g := repo.EXPECT()
		g.FindInbox(gomock.Any(), inbox.ID).Return(&inbox, nil)
		g.AppendMessage(gomock.Any(), inbox.ID, "bob", "yo").
			Return(&model.Message{ID: 2, InboxID: inbox.ID, SenderID: "bob", Content: "yo"}, nil)
		g.ListMessages(gomock.Any(), inbox.ID).Return(hiYoHistory, nil)

		msgs, err := uc.SendMessage(context.Background(), chat.SendMessageCommand{InboxID: inbox.ID, SenderID: "bob", Text: "yo"})
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "hi", msgs[0].Text)
		assert.Equal(t, "yo", msgs[1].Text)
	})

	t.Run("sad path - store timeout surfaces as retriable", func(t *testing.T) {
		uc, repo, _ := newService(t, cfg)
		inbox := aliceBobInbox

		g := repo.EXPECT()
		g.FindInbox(gomock.Any(), inbox.ID).Return(&inbox, nil)
		g.AppendMessage(gomock.Any(), inbox.ID, "alice", "hi").Return(nil, context.DeadlineExceeded)

		msgs, err := uc.SendMessage(context.Background(), chat.SendMessageCommand{InboxID: inbox.ID, SenderID: "alice", Text: "hi"})
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeDeadlineExceeded, appErrors.CodeOf(err))
		assert.Nil(t, msgs)
	})
}

func TestDeleteMessage(t *testing.T) {
	cfg := config.Config{}

	t.Run("happy path - sender deletes own message", func(t *testing.T) {
		uc, repo, _ := newService(t, cfg)
		inbox := aliceBobInbox
		remaining := []model.Message{hiYoHistory[1]}

		g := repo.EXPECT()
		g.FindInbox(gomock.Any(), inbox.ID).Return(&inbox, nil)
		g.FindMessage(gomock.Any(), int64(1)).Return(&hiYoHistory[0], nil)
		g.DeleteMessage(gomock.Any(), int64(1)).Return(nil)
		g.ListMessages(gomock.Any(), inbox.ID).Return(remaining, nil)

		msgs, err := uc.DeleteMessage(context.Background(), chat.DeleteMessageCommand{MessageID: 1, InboxID: inbox.ID, RequesterID: "alice"})
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, "yo", msgs[0].Text)
	})

	t.Run("deleting an absent id is a no-op success", func(t *testing.T) {
		uc, repo, _ := newService(t, cfg)
		inbox := aliceBobInbox
		remaining := []model.Message{hiYoHistory[1]}

		g := repo.EXPECT()
		g.FindInbox(gomock.Any(), inbox.ID).Return(&inbox, nil)
		g.FindMessage(gomock.Any(), int64(1)).Return(nil, chatrepo.ErrMessageNotFound)
		g.ListMessages(gomock.Any(), inbox.ID).Return(remaining, nil)

		msgs, err := uc.DeleteMessage(context.Background(), chat.DeleteMessageCommand{MessageID: 1, InboxID: inbox.ID, RequesterID: "alice"})
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, "yo", msgs[0].Text)
	})

	t.Run("sad path - non-sender participant cannot delete by default", func(t *testing.T) {
		uc, repo, _ := newService(t, cfg)
		inbox := aliceBobInbox

		g := repo.EXPECT()
		g.FindInbox(gomock.Any(), inbox.ID).Return(&inbox, nil)
		g.FindMessage(gomock.Any(), int64(1)).Return(&hiYoHistory[0], nil)

		msgs, err := uc.DeleteMessage(context.Background(), chat.DeleteMessageCommand{MessageID: 1, InboxID: inbox.ID, RequesterID: "bob"})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrNotMessageSender, err)
		assert.Nil(t, msgs)
	})

	t.Run("participant delete allowed when the policy flag is set", func(t *testing.T) {
		cfgWide := config.Config{}
		cfgWide.Chat.AllowParticipantDelete = true
		uc, repo, _ := newService(t, cfgWide)
		inbox := aliceBobInbox

		g := repo.EXPECT()
		g.FindInbox(gomock.Any(), inbox.ID).Return(&inbox, nil)
		g.FindMessage(gomock.Any(), int64(1)).Return(&hiYoHistory[0], nil)
		g.DeleteMessage(gomock.Any(), int64(1)).Return(nil)
		g.ListMessages(gomock.Any(), inbox.ID).Return(nil, nil)

		_, err := uc.DeleteMessage(context.Background(), chat.DeleteMessageCommand{MessageID: 1, InboxID: inbox.ID, RequesterID: "bob"})
		require.NoError(t, err)
	})

	t.Run("sad path - non-participant requester", func(t *testing.T) {
		uc, repo, _ := newService(t, cfg)
		inbox := aliceBobInbox

		repo.EXPECT().FindInbox(gomock.Any(), inbox.ID).Return(&inbox, nil)

		msgs, err := uc.DeleteMessage(context.Background(), chat.DeleteMessageCommand{MessageID: 1, InboxID: inbox.ID, RequesterID: "carol"})
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrNotParticipant, err)
		assert.Nil(t, msgs)
	})

	t.Run("message from another inbox is left alone", func(t *testing.T) {
		uc, repo, _ := newService(t, cfg)
		inbox := aliceBobInbox
		foreign := model.Message{ID: 5, InboxID: 42, SenderID: "alice", Content: "elsewhere"}

		g := repo.EXPECT()
		g.FindInbox(gomock.Any(), inbox.ID).Return(&inbox, nil)
		g.FindMessage(gomock.Any(), foreign.ID).Return(&foreign, nil)
		g.ListMessages(gomock.Any(), inbox.ID).Return(hiYoHistory, nil)

		msgs, err := uc.DeleteMessage(context.Background(), chat.DeleteMessageCommand{MessageID: foreign.ID, InboxID: inbox.ID, RequesterID: "alice"})
		require.NoError(t, err)
		assert.Len(t, msgs, 2)
	})
}

func TestListConversations(t *testing.T) {
	cfg := config.Config{}

	t.Run("previews carry the other participant and summary", func(t *testing.T) {
		uc, repo, users := newService(t, cfg)
		inboxes := []model.Inbox{
			{ID: 7, User1ID: "alice", User2ID: "bob", LastMessage: strPtr("yo"), LastSenderID: strPtr("bob")},
			{ID: 8, User1ID: "alice", User2ID: "dave"},
		}

		repo.EXPECT().FindInboxesForUser(gomock.Any(), "alice").Return(inboxes, nil)
		users.EXPECT().GetUsersByIDs(gomock.Any(), []string{"bob", "dave"}).
			Return([]usermodel.User{bobUser}, nil)

		previews, err := uc.ListConversations(context.Background(), "alice")
		require.NoError(t, err)
		require.Len(t, previews, 2)

		assert.Equal(t, int64(7), previews[0].InboxID)
		assert.Equal(t, "Bob", previews[0].Other.DisplayName)
		assert.Equal(t, "yo", previews[0].LastMessage)
		assert.Equal(t, "bob", previews[0].LastSenderID)

		// dave has no directory row; the preview degrades to the bare id
		assert.Equal(t, "dave", previews[1].Other.ID)
		assert.Empty(t, previews[1].Other.DisplayName)
		assert.Empty(t, previews[1].LastMessage)
	})

	t.Run("no inboxes yields an empty list", func(t *testing.T) {
		uc, repo, users := newService(t, cfg)

		repo.EXPECT().FindInboxesForUser(gomock.Any(), "alice").Return(nil, nil)
		users.EXPECT().GetUsersByIDs(gomock.Any(), []string{}).Return(nil, nil)

		previews, err := uc.ListConversations(context.Background(), "alice")
		require.NoError(t, err)
		assert.Empty(t, previews)
	})
}
