package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . UserRepository

import (
	"context"

	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/secmon-lab/tally/pkg/domain/types"
)

// UserRepository defines persistence of the user list
type UserRepository interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUser(ctx context.Context, id types.UserID) (*model.User, error)
	// CreateUser assigns the next sequential ID to user and stores it
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	// UpdateUser applies patch atomically and fails when the user does not exist
	UpdateUser(ctx context.Context, id types.UserID, patch model.UserPatch) (*model.User, error)
	DeleteUser(ctx context.Context, id types.UserID) error

	// Close closes the repository connection
	Close() error
}
