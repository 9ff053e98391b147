package service

import (
	"context"

	"clubverse/internal/models"
)

// Func-field stubs for the repository interfaces. Each test overrides only
// the methods it exercises; unset methods panic, which surfaces unexpected
// calls immediately.

type stubUserRepo struct {
	createFn     func(ctx context.Context, user *models.User) error
	getByIDFn    func(ctx context.Context, id string) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	listFn       func(ctx context.Context) ([]models.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserRepo) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}

type stubAdminRepo struct {
	createFn     func(ctx context.Context, admin *models.Admin) error
	getByIDFn    func(ctx context.Context, id string) (*models.Admin, error)
	getByEmailFn func(ctx context.Context, email string) (*models.Admin, error)
	listFn       func(ctx context.Context) ([]models.Admin, error)
}

func (s *stubAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	return s.createFn(ctx, admin)
}

func (s *stubAdminRepo) GetByID(ctx context.Context, id string) (*models.Admin, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubAdminRepo) List(ctx context.Context) ([]models.Admin, error) {
	return s.listFn(ctx)
}

type stubPostRepo struct {
	createFn      func(ctx context.Context, post *models.Post) error
	getByIDFn     func(ctx context.Context, id string) (*models.Post, error)
	updateFn      func(ctx context.Context, id string, apply func(*models.Post)) (*models.Post, error)
	deleteFn      func(ctx context.Context, id string) error
	listByAdminFn func(ctx context.Context, adminID string) ([]models.Post, error)
	listAllFn     func(ctx context.Context) ([]models.Post, error)
}

func (s *stubPostRepo) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}

func (s *stubPostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubPostRepo) Update(ctx context.Context, id string, apply func(*models.Post)) (*models.Post, error) {
	return s.updateFn(ctx, id, apply)
}

func (s *stubPostRepo) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubPostRepo) ListByAdmin(ctx context.Context, adminID string) ([]models.Post, error) {
	return s.listByAdminFn(ctx, adminID)
}

func (s *stubPostRepo) ListAll(ctx context.Context) ([]models.Post, error) {
	return s.listAllFn(ctx)
}

type stubEngagementRepo struct {
	toggleFn     func(ctx context.Context, entry models.Engagement) (bool, error)
	listByUserFn func(ctx context.Context, userID string) ([]models.Engagement, error)
}

func (s *stubEngagementRepo) Toggle(ctx context.Context, entry models.Engagement) (bool, error) {
	return s.toggleFn(ctx, entry)
}

func (s *stubEngagementRepo) ListByUser(ctx context.Context, userID string) ([]models.Engagement, error) {
	return s.listByUserFn(ctx, userID)
}

type stubCommentRepo struct {
	createFn     func(ctx context.Context, comment *models.Comment) error
	getByIDFn    func(ctx context.Context, commentID string) (*models.Comment, error)
	listByPostFn func(ctx context.Context, postID string) ([]models.Comment, error)
	deleteFn     func(ctx context.Context, commentID string) error
}

func (s *stubCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}

func (s *stubCommentRepo) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	return s.getByIDFn(ctx, commentID)
}

func (s *stubCommentRepo) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}

func (s *stubCommentRepo) Delete(ctx context.Context, commentID string) error {
	return s.deleteFn(ctx, commentID)
}
