package service

import (
	"context"
	"time"

	"clubverse/internal/models"
	"clubverse/internal/repository"

	"github.com/google/uuid"
)

const maxCommentLen = 10000

// CommentService manages comments on posts. Comments are deletable only by
// their author.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService creates a CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

type AddCommentInput struct {
	PostID string
	Text   string
}

// Add creates a comment on a post, authored by the calling principal.
func (s *CommentService) Add(ctx context.Context, principal models.Principal, in AddCommentInput) (*models.Comment, error) {
	if in.Text == "" {
		return nil, models.NewValidationError("Missing required fields")
	}
	if len(in.Text) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}
	if _, err := s.postRepo.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		CommentID: uuid.New().String(),
		PostID:    in.PostID,
		UserID:    principal.ID,
		UserName:  principal.Name,
		Text:      in.Text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// List returns a post's comments oldest-first in client-facing shape.
func (s *CommentService) List(ctx context.Context, postID string) ([]models.CommentView, error) {
	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	views := make([]models.CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, c.View())
	}
	return views, nil
}

// Delete removes a comment. Absent ids yield not-found; a non-author yields
// forbidden.
func (s *CommentService) Delete(ctx context.Context, principal models.Principal, commentID string) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != principal.ID {
		return models.NewForbiddenError("You can only delete your own comments")
	}
	return s.commentRepo.Delete(ctx, commentID)
}
