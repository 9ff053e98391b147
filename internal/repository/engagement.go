package repository

import (
	"context"

	"clubverse/internal/models"
	"clubverse/internal/store"
)

// EngagementRepository defines interface for one toggle ledger (likes or
// saves). Presence of a record means the relation holds.
type EngagementRepository interface {
	Toggle(ctx context.Context, entry models.Engagement) (added bool, err error)
	ListByUser(ctx context.Context, userID string) ([]models.Engagement, error)
}

type engagementRepository struct {
	entries *store.Collection[models.Engagement]
}

// NewEngagementRepository creates an EngagementRepository over the given
// ledger collection.
func NewEngagementRepository(entries *store.Collection[models.Engagement]) EngagementRepository {
	return &engagementRepository{entries: entries}
}

// Toggle flips membership for the entry's (userID, postID) key. The
// presence check and the flip share one lock acquisition in the collection,
// so concurrent toggles on the same key cannot both insert.
func (r *engagementRepository) Toggle(_ context.Context, entry models.Engagement) (bool, error) {
	added, err := r.entries.Toggle(func(e models.Engagement) bool {
		return e.EngagementKey == entry.EngagementKey
	}, entry)
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return added, nil
}

func (r *engagementRepository) ListByUser(_ context.Context, userID string) ([]models.Engagement, error) {
	return r.entries.Filter(func(e models.Engagement) bool { return e.UserID == userID }), nil
}
