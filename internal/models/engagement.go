package models

import "time"

// EngagementKey is the composite key identifying a (user, post) relation row.
type EngagementKey struct {
	UserID string `json:"userID"`
	PostID string `json:"postID"`
}

// Engagement is a presence record in the like or save ledger. Its existence
// means "liked"/"saved"; toggling removes it. The key must be unique within
// a ledger.
type Engagement struct {
	EngagementKey
	ClubName  string    `json:"clubName"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

// EngagementSummary is the reduced row returned from per-user listings.
type EngagementSummary struct {
	PostID    string    `json:"postID"`
	ClubName  string    `json:"clubName"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

// Summary reduces an engagement row for listing responses.
func (e Engagement) Summary() EngagementSummary {
	return EngagementSummary{
		PostID:    e.PostID,
		ClubName:  e.ClubName,
		Title:     e.Title,
		Timestamp: e.Timestamp,
	}
}
