package server

import (
	"clubverse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Profile handles GET /profile, returning the stored record for the
// authenticated principal.
func (s *Server) Profile(c *fiber.Ctx) error {
	p, ok := s.principal(c)
	if !ok {
		return nil
	}

	record, err := s.directoryService.Profile(c.Context(), p)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"user": record})
}

// GetClubs handles GET /user/clubs: the club directory derived from the
// admins collection.
func (s *Server) GetClubs(c *fiber.Ctx) error {
	clubs, err := s.directoryService.Clubs(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(clubs)
}

// JoinClub handles POST /user/joinClub. Join requests are acknowledged but
// not persisted yet.
// TODO: persist join requests in their own collection once the club
// membership flow is designed.
func (s *Server) JoinClub(c *fiber.Ctx) error {
	var req struct {
		ClubName    string `json:"clubName"`
		Reason      string `json:"reason"`
		ContactInfo string `json:"contactInfo"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"message":     "Join request submitted successfully",
		"clubName":    req.ClubName,
		"reason":      req.Reason,
		"contactInfo": req.ContactInfo,
	})
}
