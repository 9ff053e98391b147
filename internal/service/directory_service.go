package service

import (
	"context"

	"clubverse/internal/models"
	"clubverse/internal/repository"
)

// DirectoryService serves profile lookups and the club directory derived
// from the admins collection: one admin, one club.
type DirectoryService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
}

// NewDirectoryService creates a DirectoryService.
func NewDirectoryService(userRepo repository.UserRepository, adminRepo repository.AdminRepository) *DirectoryService {
	return &DirectoryService{userRepo: userRepo, adminRepo: adminRepo}
}

// Profile returns the stored record for the authenticated principal in its
// public shape, selected by role.
func (s *DirectoryService) Profile(ctx context.Context, principal models.Principal) (any, error) {
	if principal.IsAdmin() {
		admin, err := s.adminRepo.GetByID(ctx, principal.ID)
		if err != nil {
			return nil, err
		}
		return admin.Public(), nil
	}

	user, err := s.userRepo.GetByID(ctx, principal.ID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// Clubs lists every club on the platform.
func (s *DirectoryService) Clubs(ctx context.Context) ([]models.Club, error) {
	admins, err := s.adminRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	clubs := make([]models.Club, 0, len(admins))
	for _, a := range admins {
		clubs = append(clubs, models.Club{
			ID:       a.ID,
			ClubName: a.ClubName,
			Admin:    a.Name,
			Email:    a.Email,
		})
	}
	return clubs, nil
}
