package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/interfaces"
	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/secmon-lab/tally/pkg/domain/types"
)

// UserUseCase provides user list management
type UserUseCase struct {
	repo interfaces.UserRepository
}

// NewUserUseCase creates a new user usecase
func NewUserUseCase(repo interfaces.UserRepository) *UserUseCase {
	return &UserUseCase{
		repo: repo,
	}
}

// ListUsers returns all users ordered by ID
func (u *UserUseCase) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list users")
	}
	return users, nil
}

// GetUser returns a user. A missing user is tagged ErrTagUserNotFound.
func (u *UserUseCase) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	user, err := u.repo.GetUser(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("id", id))
	}
	return user, nil
}

// CreateUser adds a user with the next sequential ID
func (u *UserUseCase) CreateUser(ctx context.Context, name, email string) (*model.User, error) {
	created, err := u.repo.CreateUser(ctx, &model.User{
		Name:  name,
		Email: email,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create user",
			goerr.V("name", name))
	}

	ctxlog.From(ctx).Info("User created", "id", created.ID, "name", created.Name)
	return created, nil
}

// UpdateUser applies patch to an existing user and returns the result
func (u *UserUseCase) UpdateUser(ctx context.Context, id types.UserID, patch model.UserPatch) (*model.User, error) {
	updated, err := u.repo.UpdateUser(ctx, id, patch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update user", goerr.V("id", id))
	}

	return updated, nil
}

// DeleteUser removes a user. Removing a missing user succeeds.
func (u *UserUseCase) DeleteUser(ctx context.Context, id types.UserID) error {
	if err := u.repo.DeleteUser(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete user", goerr.V("id", id))
	}

	ctxlog.From(ctx).Info("User deleted", "id", id)
	return nil
}
