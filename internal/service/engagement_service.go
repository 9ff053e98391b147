package service

import (
	"context"
	"time"

	"clubverse/internal/models"
	"clubverse/internal/repository"
)

// EngagementService maintains the like and save ledgers: idempotent
// presence records keyed by (userID, postID).
type EngagementService struct {
	likes repository.EngagementRepository
	saves repository.EngagementRepository
}

// NewEngagementService creates an EngagementService over the two ledgers.
func NewEngagementService(likes, saves repository.EngagementRepository) *EngagementService {
	return &EngagementService{likes: likes, saves: saves}
}

type ToggleInput struct {
	UserID   string
	PostID   string
	ClubName string
	Title    string
}

// LikedSavedIDs is the pair of post-id sets a user has liked and saved.
type LikedSavedIDs struct {
	LikedPostIDs []string `json:"likedPostIds"`
	SavedPostIDs []string `json:"savedPostIds"`
}

// ToggleLike flips the like relation for (userID, postID). Reports whether
// the post is now liked.
func (s *EngagementService) ToggleLike(ctx context.Context, principal models.Principal, in ToggleInput) (bool, error) {
	return s.toggle(ctx, s.likes, principal, in)
}

// ToggleSave flips the save relation for (userID, postID). Reports whether
// the post is now saved.
func (s *EngagementService) ToggleSave(ctx context.Context, principal models.Principal, in ToggleInput) (bool, error) {
	return s.toggle(ctx, s.saves, principal, in)
}

func (s *EngagementService) toggle(ctx context.Context, repo repository.EngagementRepository, principal models.Principal, in ToggleInput) (bool, error) {
	if in.UserID == "" || in.PostID == "" {
		return false, models.NewValidationError("userID and postID are required")
	}
	// The ledger row belongs to the (user, post) pair; only that user may
	// flip it.
	if principal.ID != in.UserID {
		return false, models.NewForbiddenError("Access denied")
	}

	entry := models.Engagement{
		EngagementKey: models.EngagementKey{UserID: in.UserID, PostID: in.PostID},
		ClubName:      in.ClubName,
		Title:         in.Title,
		Timestamp:     time.Now().UTC(),
	}
	return repo.Toggle(ctx, entry)
}

// ListLikes returns the reduced like rows for a user.
func (s *EngagementService) ListLikes(ctx context.Context, principal models.Principal, userID string) ([]models.EngagementSummary, error) {
	return s.list(ctx, s.likes, principal, userID)
}

// ListSaves returns the reduced save rows for a user.
func (s *EngagementService) ListSaves(ctx context.Context, principal models.Principal, userID string) ([]models.EngagementSummary, error) {
	return s.list(ctx, s.saves, principal, userID)
}

func (s *EngagementService) list(ctx context.Context, repo repository.EngagementRepository, principal models.Principal, userID string) ([]models.EngagementSummary, error) {
	if principal.ID != userID {
		return nil, models.NewForbiddenError("Access denied")
	}

	entries, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.EngagementSummary, 0, len(entries))
	for _, e := range entries {
		summaries = append(summaries, e.Summary())
	}
	return summaries, nil
}

// GetLikedSavedIDs returns the post-id sets for both relations in one call.
func (s *EngagementService) GetLikedSavedIDs(ctx context.Context, principal models.Principal, userID string) (*LikedSavedIDs, error) {
	if principal.ID != userID {
		return nil, models.NewForbiddenError("Access denied")
	}

	likes, err := s.likes.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	saves, err := s.saves.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &LikedSavedIDs{
		LikedPostIDs: make([]string, 0, len(likes)),
		SavedPostIDs: make([]string, 0, len(saves)),
	}
	for _, l := range likes {
		out.LikedPostIDs = append(out.LikedPostIDs, l.PostID)
	}
	for _, sv := range saves {
		out.SavedPostIDs = append(out.SavedPostIDs, sv.PostID)
	}
	return out, nil
}
