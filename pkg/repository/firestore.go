package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/interfaces"
	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/secmon-lab/tally/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	usersCollection    = "users"
	countersCollection = "counters"

	// Document IDs
	userCounterDocID = "user"

	// Field names
	fieldCurrentNumber = "current_number"
)

// Firestore implements UserRepository with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.UserRepository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on bad project or credentials; an empty collection is fine
	_, err = client.Collection(usersCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// ListUsers returns all users ordered by ID
func (f *Firestore) ListUsers(ctx context.Context) ([]*model.User, error) {
	iter := f.client.Collection(usersCollection).Documents(ctx)
	defer iter.Stop()

	var users []*model.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate users")
		}

		var user model.User
		if err := doc.DataTo(&user); err != nil {
			return nil, goerr.Wrap(err, "failed to decode user", goerr.V("doc", doc.Ref.ID))
		}
		users = append(users, &user)
	}

	sort.Slice(users, func(i, j int) bool {
		return users[i].ID < users[j].ID
	})

	return users, nil
}

// GetUser retrieves a user by ID
func (f *Firestore) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	doc, err := f.client.Collection(usersCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrUserNotFound, "failed to get user",
				goerr.V("id", id),
				goerr.T(model.ErrTagUserNotFound))
		}
		return nil, goerr.Wrap(err, "failed to get user from firestore", goerr.V("id", id))
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user", goerr.V("id", id))
	}

	return &user, nil
}

// CreateUser allocates the next ID from the counter document and stores user
// in the same transaction
func (f *Firestore) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user == nil {
		return nil, goerr.New("user is nil")
	}

	counterDoc := f.client.Collection(countersCollection).Doc(userCounterDocID)
	created := *user

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var next types.UserID

		doc, err := tx.Get(counterDoc)
		switch {
		case status.Code(err) == codes.NotFound:
			next = 1
		case err != nil:
			return goerr.Wrap(err, "failed to get counter document")
		default:
			current, err := doc.DataAt(fieldCurrentNumber)
			if err != nil {
				return goerr.Wrap(err, "failed to get current_number field")
			}

			// Handle both int and int64 types
			switch v := current.(type) {
			case int64:
				next = types.UserID(v) + 1
			case int:
				next = types.UserID(v) + 1
			default:
				return goerr.New("unexpected type for current_number")
			}
		}

		created.ID = next
		if err := tx.Set(counterDoc, map[string]any{fieldCurrentNumber: next.Int()}); err != nil {
			return goerr.Wrap(err, "failed to update counter")
		}
		return tx.Create(f.client.Collection(usersCollection).Doc(next.String()), &created)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create user")
	}

	return &created, nil
}

// UpdateUser applies patch to a stored user in a transaction, so a concurrent
// delete is never undone
func (f *Firestore) UpdateUser(ctx context.Context, id types.UserID, patch model.UserPatch) (*model.User, error) {
	docRef := f.client.Collection(usersCollection).Doc(id.String())
	var updated model.User

	err := f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(model.ErrUserNotFound, "failed to update user",
					goerr.V("id", id),
					goerr.T(model.ErrTagUserNotFound))
			}
			return goerr.Wrap(err, "failed to get user from firestore", goerr.V("id", id))
		}

		var current model.User
		if err := doc.DataTo(&current); err != nil {
			return goerr.Wrap(err, "failed to decode user", goerr.V("id", id))
		}

		updated = patch.Apply(current)
		return tx.Set(docRef, &updated)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update user in firestore", goerr.V("id", id))
	}

	return &updated, nil
}

// DeleteUser deletes a user. Deleting a missing user is not an error.
func (f *Firestore) DeleteUser(ctx context.Context, id types.UserID) error {
	if _, err := f.client.Collection(usersCollection).Doc(id.String()).Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete user from firestore", goerr.V("id", id))
	}
	return nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}
