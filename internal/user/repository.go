package user

import (
	"context"

	"campuschat/internal/user/model"
)

// UserRepository is the read-only directory surface the conversation service
// uses to enrich responses with participant display metadata.
type UserRepository interface {
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUsersByIDs(ctx context.Context, ids []string) ([]model.User, error)
}
