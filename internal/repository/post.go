package repository

import (
	"context"

	"clubverse/internal/models"
	"clubverse/internal/store"
)

// PostRepository defines interface for post operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, id string, apply func(*models.Post)) (*models.Post, error)
	Delete(ctx context.Context, id string) error
	ListByAdmin(ctx context.Context, adminID string) ([]models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
}

type postRepository struct {
	posts *store.Collection[models.Post]
}

// NewPostRepository creates a new PostRepository over the posts collection.
func NewPostRepository(posts *store.Collection[models.Post]) PostRepository {
	return &postRepository{posts: posts}
}

// Create inserts at the head of the collection; the feed is newest-first by
// contract, not by sort.
func (r *postRepository) Create(_ context.Context, post *models.Post) error {
	if err := r.posts.Prepend(*post); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(_ context.Context, id string) (*models.Post, error) {
	post, ok := r.posts.Find(func(p models.Post) bool { return p.ID == id })
	if !ok {
		return nil, models.NewNotFoundError("Post", id)
	}
	return &post, nil
}

func (r *postRepository) Update(_ context.Context, id string, apply func(*models.Post)) (*models.Post, error) {
	post, found, err := r.posts.UpdateFirst(
		func(p models.Post) bool { return p.ID == id },
		apply,
	)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if !found {
		return nil, models.NewNotFoundError("Post", id)
	}
	return &post, nil
}

func (r *postRepository) Delete(_ context.Context, id string) error {
	removed, err := r.posts.RemoveFirst(func(p models.Post) bool { return p.ID == id })
	if err != nil {
		return models.NewInternalError(err)
	}
	if !removed {
		return models.NewNotFoundError("Post", id)
	}
	return nil
}

func (r *postRepository) ListByAdmin(_ context.Context, adminID string) ([]models.Post, error) {
	return r.posts.Filter(func(p models.Post) bool { return p.AdminID == adminID }), nil
}

func (r *postRepository) ListAll(_ context.Context) ([]models.Post, error) {
	return r.posts.Snapshot(), nil
}
