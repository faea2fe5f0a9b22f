package gateway

import (
	"context"
	"encoding/json"
	"sync"

	"campuschat/internal/chat"
	"campuschat/pkg/errors"
	"campuschat/pkg/logger"
)

// Hub bridges socket connections to the conversation service and fans out
// updated message lists to the clients subscribed to each inbox.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool
	subs    map[int64]map[*Client]bool

	chat   chat.ChatUsecase
	logger logger.Logger
	relay  *Relay
}

func NewHub(uc chat.ChatUsecase, logger logger.Logger) *Hub {
	return &Hub{
		clients: map[*Client]bool{},
		subs:    map[int64]map[*Client]bool{},
		chat:    uc,
		logger:  logger,
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
}

// Unregister drops the client from every inbox subscription and closes its
// send channel, stopping the write pump.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.clients[c] {
		return
	}
	delete(h.clients, c)
	for inboxID, set := range h.subs {
		delete(set, c)
		if len(set) == 0 {
			delete(h.subs, inboxID)
		}
	}
	c.closeSend()
}

func (h *Hub) Dispatch(ctx context.Context, c *Client, ev *ClientEvent) {
	switch ev.Event {
	case EventJoin:
		// Membership check doubles as history load; the joining client gets
		// the current list right away.
		conv, err := h.chat.OpenConversation(ctx, c.UserID, ev.InboxID)
		if err != nil {
			h.sendError(c, ev.InboxID, err)
			return
		}
		h.subscribe(c, ev.InboxID)
		h.sendTo(c, &ServerEvent{Event: EventNewMessage, InboxID: ev.InboxID, Messages: conv.Messages})

	case EventLeave:
		h.unsubscribe(c, ev.InboxID)

	case EventChatMessage:
		msgs, err := h.chat.SendMessage(ctx, chat.SendMessageCommand{
			InboxID:  ev.InboxID,
			SenderID: c.UserID,
			Text:     ev.Message,
		})
		if err != nil {
			h.sendError(c, ev.InboxID, err)
			return
		}
		h.Broadcast(ev.InboxID, msgs)

	case EventDeleteMessage:
		msgs, err := h.chat.DeleteMessage(ctx, chat.DeleteMessageCommand{
			MessageID:   ev.MessageID,
			InboxID:     ev.InboxID,
			RequesterID: c.UserID,
		})
		if err != nil {
			h.sendError(c, ev.InboxID, err)
			return
		}
		h.Broadcast(ev.InboxID, msgs)

	default:
		h.sendError(c, ev.InboxID, errors.InvalidArg("unknown event: "+ev.Event))
	}
}

// Broadcast fans the updated list out to local subscribers and, when a relay
// is attached, to the other gateway instances.
func (h *Hub) Broadcast(inboxID int64, messages []chat.MessageDTO) {
	h.broadcastLocal(inboxID, messages)
	if h.relay != nil {
		h.relay.Publish(inboxID, messages)
	}
}

func (h *Hub) broadcastLocal(inboxID int64, messages []chat.MessageDTO) {
	data, err := json.Marshal(&ServerEvent{Event: EventNewMessage, InboxID: inboxID, Messages: messages})
	if err != nil {
		h.logger.Error("failed to marshal broadcast", "inbox_id", inboxID, "err", err)
		return
	}

	h.mu.RLock()
	snapshot := make([]*Client, 0, len(h.subs[inboxID]))
	for c := range h.subs[inboxID] {
		snapshot = append(snapshot, c)
	}
	h.mu.RUnlock()

	// The snapshot may contain clients unregistered after the lock was
	// released; trySend handles them.
	for _, c := range snapshot {
		c.trySend(data)
	}
}

func (h *Hub) subscribe(c *Client, inboxID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.clients[c] {
		return
	}
	if _, ok := h.subs[inboxID]; !ok {
		h.subs[inboxID] = map[*Client]bool{}
	}
	h.subs[inboxID][c] = true
}

func (h *Hub) unsubscribe(c *Client, inboxID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.subs[inboxID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.subs, inboxID)
		}
	}
}

func (h *Hub) sendTo(c *Client, ev *ServerEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("failed to marshal event", "event", ev.Event, "err", err)
		return
	}
	c.trySend(data)
}

// sendError delivers a typed failure to the originating connection only;
// rejections are never broadcast.
func (h *Hub) sendError(c *Client, inboxID int64, err error) {
	h.logger.Warn("gateway event rejected", "user_id", c.UserID, "inbox_id", inboxID, "err", err)
	h.sendTo(c, &ServerEvent{
		Event:   EventError,
		InboxID: inboxID,
		Code:    string(errors.CodeOf(err)),
		Message: err.Error(),
	})
}
