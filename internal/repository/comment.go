package repository

import (
	"context"
	"sort"

	"clubverse/internal/models"
	"clubverse/internal/store"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	Delete(ctx context.Context, commentID string) error
}

type commentRepository struct {
	comments *store.Collection[models.Comment]
}

// NewCommentRepository creates a new CommentRepository over the comments
// collection.
func NewCommentRepository(comments *store.Collection[models.Comment]) CommentRepository {
	return &commentRepository{comments: comments}
}

func (r *commentRepository) Create(_ context.Context, comment *models.Comment) error {
	if err := r.comments.Append(*comment); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByID(_ context.Context, commentID string) (*models.Comment, error) {
	comment, ok := r.comments.Find(func(c models.Comment) bool { return c.CommentID == commentID })
	if !ok {
		return nil, models.NewNotFoundError("Comment", commentID)
	}
	return &comment, nil
}

// ListByPost returns a post's comments ordered oldest-first.
func (r *commentRepository) ListByPost(_ context.Context, postID string) ([]models.Comment, error) {
	comments := r.comments.Filter(func(c models.Comment) bool { return c.PostID == postID })
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (r *commentRepository) Delete(_ context.Context, commentID string) error {
	removed, err := r.comments.RemoveFirst(func(c models.Comment) bool { return c.CommentID == commentID })
	if err != nil {
		return models.NewInternalError(err)
	}
	if !removed {
		return models.NewNotFoundError("Comment", commentID)
	}
	return nil
}
