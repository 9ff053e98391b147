// Package repository provides data access layer implementations over the
// file-backed collections.
package repository

import (
	"context"
	"errors"

	"clubverse/internal/models"
	"clubverse/internal/store"
)

// UserRepository defines interface for user operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

type userRepository struct {
	users *store.Collection[models.User]
}

// NewUserRepository creates a new UserRepository over the users collection.
func NewUserRepository(users *store.Collection[models.User]) UserRepository {
	return &userRepository{users: users}
}

func (r *userRepository) Create(_ context.Context, user *models.User) error {
	err := r.users.AppendUnique(func(u models.User) bool {
		return u.Email == user.Email
	}, *user)
	if errors.Is(err, store.ErrDuplicate) {
		return models.NewConflictError("User already exists")
	}
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	user, ok := r.users.Find(func(u models.User) bool { return u.ID == id })
	if !ok {
		return nil, models.NewNotFoundError("User", id)
	}
	return &user, nil
}

// GetByEmail returns (nil, nil) when no user has the given email, so callers
// can distinguish "absent" from a lookup failure.
func (r *userRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := r.users.Find(func(u models.User) bool { return u.Email == email })
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) List(_ context.Context) ([]models.User, error) {
	return r.users.Snapshot(), nil
}
