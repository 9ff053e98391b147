package service

import (
	"context"
	"testing"
	"time"

	"clubverse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngagementService_ToggleLike(t *testing.T) {
	t.Run("RecordsEntryForOwnUser", func(t *testing.T) {
		var toggled models.Engagement
		likes := &stubEngagementRepo{
			toggleFn: func(_ context.Context, entry models.Engagement) (bool, error) {
				toggled = entry
				return true, nil
			},
		}
		svc := NewEngagementService(likes, &stubEngagementRepo{})

		added, err := svc.ToggleLike(context.Background(), userPrincipal, ToggleInput{
			UserID: "u-1", PostID: "p-1", ClubName: "Chess Club", Title: "Blitz night",
		})
		require.NoError(t, err)
		assert.True(t, added)
		assert.Equal(t, "u-1", toggled.UserID)
		assert.Equal(t, "p-1", toggled.PostID)
		assert.False(t, toggled.Timestamp.IsZero())
	})

	t.Run("OtherUserForbidden", func(t *testing.T) {
		svc := NewEngagementService(&stubEngagementRepo{}, &stubEngagementRepo{})

		_, err := svc.ToggleLike(context.Background(), userPrincipal, ToggleInput{
			UserID: "u-2", PostID: "p-1",
		})
		assert.Equal(t, models.CodeForbidden, appErrCode(t, err))
	})

	t.Run("MissingIDs", func(t *testing.T) {
		svc := NewEngagementService(&stubEngagementRepo{}, &stubEngagementRepo{})

		_, err := svc.ToggleLike(context.Background(), userPrincipal, ToggleInput{UserID: "u-1"})
		assert.Equal(t, models.CodeValidation, appErrCode(t, err))
	})
}

func TestEngagementService_ToggleSave_UsesSaveLedger(t *testing.T) {
	saveCalled := false
	saves := &stubEngagementRepo{
		toggleFn: func(_ context.Context, _ models.Engagement) (bool, error) {
			saveCalled = true
			return false, nil
		},
	}
	svc := NewEngagementService(&stubEngagementRepo{}, saves)

	added, err := svc.ToggleSave(context.Background(), userPrincipal, ToggleInput{
		UserID: "u-1", PostID: "p-1",
	})
	require.NoError(t, err)
	assert.False(t, added)
	assert.True(t, saveCalled)
}

func TestEngagementService_ListLikes(t *testing.T) {
	entries := []models.Engagement{
		{
			EngagementKey: models.EngagementKey{UserID: "u-1", PostID: "p-1"},
			ClubName:      "Chess Club", Title: "Blitz night", Timestamp: time.Now().UTC(),
		},
	}
	likes := &stubEngagementRepo{
		listByUserFn: func(_ context.Context, _ string) ([]models.Engagement, error) {
			return entries, nil
		},
	}
	svc := NewEngagementService(likes, &stubEngagementRepo{})

	t.Run("ReturnsSummaries", func(t *testing.T) {
		summaries, err := svc.ListLikes(context.Background(), userPrincipal, "u-1")
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "p-1", summaries[0].PostID)
		assert.Equal(t, "Chess Club", summaries[0].ClubName)
	})

	t.Run("OtherUserForbidden", func(t *testing.T) {
		_, err := svc.ListLikes(context.Background(), userPrincipal, "u-2")
		assert.Equal(t, models.CodeForbidden, appErrCode(t, err))
	})
}

func TestEngagementService_GetLikedSavedIDs(t *testing.T) {
	likes := &stubEngagementRepo{
		listByUserFn: func(_ context.Context, _ string) ([]models.Engagement, error) {
			return []models.Engagement{
				{EngagementKey: models.EngagementKey{UserID: "u-1", PostID: "p-1"}},
				{EngagementKey: models.EngagementKey{UserID: "u-1", PostID: "p-3"}},
			}, nil
		},
	}
	saves := &stubEngagementRepo{
		listByUserFn: func(_ context.Context, _ string) ([]models.Engagement, error) {
			return []models.Engagement{
				{EngagementKey: models.EngagementKey{UserID: "u-1", PostID: "p-2"}},
			}, nil
		},
	}
	svc := NewEngagementService(likes, saves)

	ids, err := svc.GetLikedSavedIDs(context.Background(), userPrincipal, "u-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1", "p-3"}, ids.LikedPostIDs)
	assert.Equal(t, []string{"p-2"}, ids.SavedPostIDs)
}
