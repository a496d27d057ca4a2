package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/tally/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/secmon-lab/tally/pkg/domain/types"
	"github.com/secmon-lab/tally/pkg/repository"
	"github.com/secmon-lab/tally/pkg/usecase"
)

func ptr[T any](v T) *T {
	return &v
}

func TestUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("List returns seeded users in ID order", func(t *testing.T) {
		uc := usecase.NewUserUseCase(repository.NewMemory(model.SeedUsers()...))

		users, err := uc.ListUsers(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(users), 2)
		gt.Equal(t, users[0].Name, "Alice")
		gt.Equal(t, users[1].Name, "Bob")
	})

	t.Run("Create assigns the next ID", func(t *testing.T) {
		uc := usecase.NewUserUseCase(repository.NewMemory(model.SeedUsers()...))

		user, err := uc.CreateUser(ctx, "Carol", "carol@example.com")
		gt.NoError(t, err).Required()
		gt.Equal(t, user.ID, types.UserID(3))
		gt.Equal(t, user.Name, "Carol")

		got, err := uc.GetUser(ctx, 3)
		gt.NoError(t, err).Required()
		gt.Equal(t, got.Email, "carol@example.com")
	})

	t.Run("Get missing user is tagged not found", func(t *testing.T) {
		uc := usecase.NewUserUseCase(repository.NewMemory())

		_, err := uc.GetUser(ctx, 42)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagUserNotFound))
	})

	t.Run("Update changes only given fields", func(t *testing.T) {
		uc := usecase.NewUserUseCase(repository.NewMemory(model.SeedUsers()...))

		user, err := uc.UpdateUser(ctx, 1, model.UserPatch{Email: ptr("alice@corp.example.com")})
		gt.NoError(t, err).Required()
		gt.Equal(t, user.Name, "Alice")
		gt.Equal(t, user.Email, "alice@corp.example.com")

		got, err := uc.GetUser(ctx, 1)
		gt.NoError(t, err).Required()
		gt.Equal(t, *got, *user)
	})

	t.Run("Update missing user is tagged not found", func(t *testing.T) {
		uc := usecase.NewUserUseCase(repository.NewMemory())

		_, err := uc.UpdateUser(ctx, 7, model.UserPatch{Name: ptr("Nobody")})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagUserNotFound))
	})

	t.Run("Delete is idempotent", func(t *testing.T) {
		uc := usecase.NewUserUseCase(repository.NewMemory(model.SeedUsers()...))

		gt.NoError(t, uc.DeleteUser(ctx, 2))
		gt.NoError(t, uc.DeleteUser(ctx, 2))

		users, err := uc.ListUsers(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(users), 1)
	})

	t.Run("Update is a single repository operation", func(t *testing.T) {
		repo := &mocks.UserRepositoryMock{
			UpdateUserFunc: func(ctx context.Context, id types.UserID, patch model.UserPatch) (*model.User, error) {
				u := patch.Apply(model.User{ID: id, Name: "Alice", Email: "alice@example.com"})
				return &u, nil
			},
		}
		uc := usecase.NewUserUseCase(repo)

		user, err := uc.UpdateUser(ctx, 1, model.UserPatch{Name: ptr("Alicia")})
		gt.NoError(t, err).Required()
		gt.Equal(t, user.Name, "Alicia")

		calls := repo.UpdateUserCalls()
		gt.Equal(t, len(calls), 1)
		gt.Equal(t, calls[0].Id, types.UserID(1))
		gt.Equal(t, len(repo.GetUserCalls()), 0)
	})

	t.Run("Repository failure is wrapped", func(t *testing.T) {
		repoErr := errors.New("connection lost")
		repo := &mocks.UserRepositoryMock{
			ListUsersFunc: func(ctx context.Context) ([]*model.User, error) {
				return nil, repoErr
			},
		}
		uc := usecase.NewUserUseCase(repo)

		_, err := uc.ListUsers(ctx)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, repoErr))
		gt.Equal(t, len(repo.ListUsersCalls()), 1)
	})
}
