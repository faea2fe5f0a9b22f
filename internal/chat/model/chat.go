package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Inbox is the persisted record of a two-party conversation. The pair is
// stored in canonical order (User1ID < User2ID) so the composite unique
// index enforces at most one inbox per unordered pair.
type Inbox struct {
	bun.BaseModel `bun:"table:inboxes,alias:i"`

	ID      int64  `bun:",pk,autoincrement"`
	User1ID string `bun:",notnull"`
	User2ID string `bun:",notnull"`

	// Summary fields, refreshed on every append
	LastMessage  *string `bun:",nullzero"`
	LastSenderID *string `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

func (i *Inbox) HasParticipant(userID string) bool {
	return i.User1ID == userID || i.User2ID == userID
}

// OtherParticipant returns the peer of the given user. Callers must have
// verified membership first.
func (i *Inbox) OtherParticipant(userID string) string {
	if i.User1ID == userID {
		return i.User2ID
	}
	return i.User1ID
}

// Message is one timestamped utterance within an inbox. The autoincrement id
// doubles as the insertion-order tie-breaker when timestamps collide.
type Message struct {
	bun.BaseModel `bun:"table:messages,alias:m"`

	ID       int64     `bun:",pk,autoincrement"`
	InboxID  int64     `bun:",notnull"`
	SenderID string    `bun:",notnull"`
	Content  string    `bun:",notnull"`
	SentAt   time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// NormalizePair maps an unordered user pair onto its canonical storage order.
func NormalizePair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}
