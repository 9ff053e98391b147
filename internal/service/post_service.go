package service

import (
	"context"
	"time"

	"clubverse/internal/cache"
	"clubverse/internal/models"
	"clubverse/internal/repository"

	"github.com/google/uuid"
)

// PostService manages the post lifecycle: admin-gated CRUD over club posts
// and their coordinator sub-records.
type PostService struct {
	postRepo repository.PostRepository
	feed     *cache.FeedCache
	// strictOwnership makes Update/Delete reject admins that do not own the
	// post. The legacy behavior (any admin may mutate any post) is kept
	// behind this flag; see DESIGN.md.
	strictOwnership bool
}

// NewPostService creates a PostService. feed may be nil when no cache is
// available.
func NewPostService(postRepo repository.PostRepository, feed *cache.FeedCache, strictOwnership bool) *PostService {
	return &PostService{
		postRepo:        postRepo,
		feed:            feed,
		strictOwnership: strictOwnership,
	}
}

type CreatePostInput struct {
	ClubName     string
	Title        string
	Description  string
	Coordinators *[]models.Coordinator
	Image        string
}

// Create publishes a new post owned by the calling admin. The post is
// inserted at the head of the collection: the feed is newest-first by
// contract.
func (s *PostService) Create(ctx context.Context, principal models.Principal, in CreatePostInput) (*models.Post, error) {
	if !principal.IsAdmin() {
		return nil, models.NewForbiddenError("Access denied. Admin role required.")
	}
	if in.ClubName == "" || in.Title == "" || in.Description == "" || in.Coordinators == nil {
		return nil, models.NewValidationError("Missing required fields.")
	}

	post := &models.Post{
		ID:           uuid.New().String(),
		AdminID:      principal.ID,
		ClubName:     in.ClubName,
		Title:        in.Title,
		Description:  in.Description,
		Coordinators: *in.Coordinators,
		Image:        in.Image,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx)
	return post, nil
}

// Get returns a single post by id.
func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// Update applies a partial patch to a post; omitted fields keep their
// stored values. Requires the admin role, and post ownership when strict
// ownership is enabled.
func (s *PostService) Update(ctx context.Context, principal models.Principal, id string, patch models.PostPatch) (*models.Post, error) {
	if !principal.IsAdmin() {
		return nil, models.NewForbiddenError("Access denied. Admin role required.")
	}

	existing, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.strictOwnership && existing.AdminID != principal.ID {
		return nil, models.NewForbiddenError("You can only update your own club's posts")
	}

	updated, err := s.postRepo.Update(ctx, id, func(p *models.Post) {
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Coordinators != nil {
			p.Coordinators = *patch.Coordinators
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		p.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx)
	return updated, nil
}

// Delete removes a post. Requires the admin role, and post ownership when
// strict ownership is enabled. Likes, saves, and comments for the post are
// intentionally left in place (documented gap; no cross-collection
// transactions exist).
func (s *PostService) Delete(ctx context.Context, principal models.Principal, id string) error {
	if !principal.IsAdmin() {
		return models.NewForbiddenError("Access denied. Admin role required.")
	}

	if s.strictOwnership {
		existing, err := s.postRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing.AdminID != principal.ID {
			return models.NewForbiddenError("You can only delete your own club's posts")
		}
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateFeed(ctx)
	return nil
}

// ListByAdmin returns all posts owned by the given admin, in collection
// order. Admin role required.
func (s *PostService) ListByAdmin(ctx context.Context, principal models.Principal, adminID string) ([]models.Post, error) {
	if !principal.IsAdmin() {
		return nil, models.NewForbiddenError("Access denied. Admin role required.")
	}
	return s.postRepo.ListByAdmin(ctx, adminID)
}

// ListAll returns the full feed, newest-first. Pagination is applied by the
// HTTP layer. The redis feed cache is consulted first and repopulated on a
// miss; when no cache is configured reads go straight to the collection.
func (s *PostService) ListAll(ctx context.Context) ([]models.Post, error) {
	if s.feed != nil {
		if posts, ok := s.feed.Get(ctx); ok {
			return posts, nil
		}
	}

	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.Set(ctx, posts)
	}
	return posts, nil
}

func (s *PostService) invalidateFeed(ctx context.Context) {
	if s.feed != nil {
		s.feed.Invalidate(ctx)
	}
}
