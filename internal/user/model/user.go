package model

import (
	"time"

	"github.com/uptrace/bun"
)

// User mirrors the platform's account record to the depth the chat core
// needs: identity plus display metadata. Accounts are owned by the auth
// subsystem; this service only reads them.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID string `bun:",pk"`

	// Username = unique @handle (used for login and identity)
	Username string `bun:",unique,notnull"`

	// Name = display name shown in chats (can be changed freely)
	Name string `bun:",notnull"`

	Avatar string `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
