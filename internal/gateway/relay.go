package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"campuschat/internal/chat"
	"campuschat/pkg/logger"
)

const relaySubjectPrefix = "chat.inbox"

// Relay republishes broadcasts over NATS so every gateway instance fans out
// to its own connected clients. The store stays the source of truth; the
// relay carries only the already-built broadcast payloads, so core pub/sub
// is enough and no stream retention is needed.
type Relay struct {
	id     string
	nc     *nats.Conn
	hub    *Hub
	sub    *nats.Subscription
	logger logger.Logger
}

func NewRelay(url string, hub *Hub, logger logger.Logger) (*Relay, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	r := &Relay{
		id:     uuid.NewString(),
		nc:     nc,
		hub:    hub,
		logger: logger,
	}

	sub, err := nc.Subscribe(relaySubjectPrefix+".*", r.handle)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to subscribe to relay subject: %w", err)
	}
	r.sub = sub
	hub.relay = r
	return r, nil
}

func (r *Relay) Publish(inboxID int64, messages []chat.MessageDTO) {
	data, err := json.Marshal(&ServerEvent{
		Event:    EventNewMessage,
		InboxID:  inboxID,
		Messages: messages,
		Origin:   r.id,
	})
	if err != nil {
		r.logger.Error("failed to marshal relay payload", "inbox_id", inboxID, "err", err)
		return
	}
	subject := fmt.Sprintf("%s.%d", relaySubjectPrefix, inboxID)
	if err := r.nc.Publish(subject, data); err != nil {
		r.logger.Error("failed to publish relay payload", "subject", subject, "err", err)
	}
}

func (r *Relay) handle(msg *nats.Msg) {
	var ev ServerEvent
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		r.logger.Error("failed to unmarshal relay payload", "subject", msg.Subject, "err", err)
		return
	}
	if ev.Origin == r.id {
		// Our own publish echoed back; local clients were already served.
		return
	}
	r.hub.broadcastLocal(ev.InboxID, ev.Messages)
}

func (r *Relay) Close() {
	if r.sub != nil {
		_ = r.sub.Unsubscribe()
	}
	if r.nc != nil {
		r.nc.Close()
	}
}
