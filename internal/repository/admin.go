package repository

import (
	"context"
	"errors"

	"clubverse/internal/models"
	"clubverse/internal/store"
)

// AdminRepository defines interface for admin operations
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id string) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	List(ctx context.Context) ([]models.Admin, error)
}

type adminRepository struct {
	admins *store.Collection[models.Admin]
}

// NewAdminRepository creates a new AdminRepository over the admins collection.
func NewAdminRepository(admins *store.Collection[models.Admin]) AdminRepository {
	return &adminRepository{admins: admins}
}

func (r *adminRepository) Create(_ context.Context, admin *models.Admin) error {
	err := r.admins.AppendUnique(func(a models.Admin) bool {
		return a.Email == admin.Email
	}, *admin)
	if errors.Is(err, store.ErrDuplicate) {
		return models.NewConflictError("Admin already exists")
	}
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *adminRepository) GetByID(_ context.Context, id string) (*models.Admin, error) {
	admin, ok := r.admins.Find(func(a models.Admin) bool { return a.ID == id })
	if !ok {
		return nil, models.NewNotFoundError("Admin", id)
	}
	return &admin, nil
}

func (r *adminRepository) GetByEmail(_ context.Context, email string) (*models.Admin, error) {
	admin, ok := r.admins.Find(func(a models.Admin) bool { return a.Email == email })
	if !ok {
		return nil, nil
	}
	return &admin, nil
}

func (r *adminRepository) List(_ context.Context) ([]models.Admin, error) {
	return r.admins.Snapshot(), nil
}
