package service

import (
	"context"
	"testing"

	"clubverse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryService_Profile(t *testing.T) {
	userRepo := &stubUserRepo{
		getByIDFn: func(_ context.Context, id string) (*models.User, error) {
			if id != "u-1" {
				return nil, models.NewNotFoundError("User", id)
			}
			return &models.User{ID: "u-1", Name: "Sam"}, nil
		},
	}
	adminRepo := &stubAdminRepo{
		getByIDFn: func(_ context.Context, id string) (*models.Admin, error) {
			if id != "a-1" {
				return nil, models.NewNotFoundError("Admin", id)
			}
			return &models.Admin{ID: "a-1", Name: "Avery", ClubName: "Chess Club"}, nil
		},
	}
	svc := NewDirectoryService(userRepo, adminRepo)

	t.Run("UserRoleReadsUserCollection", func(t *testing.T) {
		record, err := svc.Profile(context.Background(), userPrincipal)
		require.NoError(t, err)
		user, ok := record.(models.PublicUser)
		require.True(t, ok)
		assert.Equal(t, "Sam", user.Name)
	})

	t.Run("AdminRoleReadsAdminCollection", func(t *testing.T) {
		record, err := svc.Profile(context.Background(), adminPrincipal)
		require.NoError(t, err)
		admin, ok := record.(models.PublicAdmin)
		require.True(t, ok)
		assert.Equal(t, "Chess Club", admin.ClubName)
	})

	t.Run("UnknownID", func(t *testing.T) {
		ghost := models.Principal{ID: "ghost", Role: models.RoleUser}
		_, err := svc.Profile(context.Background(), ghost)
		assert.Equal(t, models.CodeNotFound, appErrCode(t, err))
	})
}

func TestDirectoryService_Clubs(t *testing.T) {
	adminRepo := &stubAdminRepo{
		listFn: func(_ context.Context) ([]models.Admin, error) {
			return []models.Admin{
				{ID: "a-1", Name: "Avery", Email: "avery@example.com", ClubName: "Chess Club"},
				{ID: "a-2", Name: "Blake", Email: "blake@example.com", ClubName: "Debate Society"},
			}, nil
		},
	}
	svc := NewDirectoryService(&stubUserRepo{}, adminRepo)

	clubs, err := svc.Clubs(context.Background())
	require.NoError(t, err)
	require.Len(t, clubs, 2)
	assert.Equal(t, "Chess Club", clubs[0].ClubName)
	assert.Equal(t, "Avery", clubs[0].Admin)
	assert.Equal(t, "a-2", clubs[1].ID)
}
