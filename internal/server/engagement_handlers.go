package server

import (
	"context"

	"clubverse/internal/models"
	"clubverse/internal/observability"
	"clubverse/internal/service"

	"github.com/gofiber/fiber/v2"
)

type toggleRequest struct {
	UserID   string `json:"userID"`
	PostID   string `json:"postID"`
	ClubName string `json:"clubName"`
	Title    string `json:"title"`
}

// LikePost handles POST /user/userLike: an idempotent like toggle.
func (s *Server) LikePost(c *fiber.Ctx) error {
	return s.toggleEngagement(c, "like", s.engagementService.ToggleLike, "Post liked", "Post unliked")
}

// SavePost handles POST /user/saveUserPost: an idempotent save toggle.
func (s *Server) SavePost(c *fiber.Ctx) error {
	return s.toggleEngagement(c, "save", s.engagementService.ToggleSave, "Post saved", "Post unsaved")
}

func (s *Server) toggleEngagement(
	c *fiber.Ctx,
	relation string,
	toggle func(ctx context.Context, p models.Principal, in service.ToggleInput) (bool, error),
	addedMsg, removedMsg string,
) error {
	p, ok := s.principal(c)
	if !ok {
		return nil
	}

	var req toggleRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	added, err := toggle(c.Context(), p, service.ToggleInput{
		UserID:   req.UserID,
		PostID:   req.PostID,
		ClubName: req.ClubName,
		Title:    req.Title,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	message := removedMsg
	direction := "removed"
	if added {
		message = addedMsg
		direction = "added"
	}
	observability.EngagementToggles.WithLabelValues(relation, direction).Inc()

	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"postID":  req.PostID,
		"userID":  req.UserID,
	})
}

// GetUserDetails handles GET /user/getUserDetails/like/save?userID=...,
// returning the post-id sets the user has liked and saved.
func (s *Server) GetUserDetails(c *fiber.Ctx) error {
	p, ok := s.principal(c)
	if !ok {
		return nil
	}

	ids, err := s.engagementService.GetLikedSavedIDs(c.Context(), p, c.Query("userID"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(ids)
}

// GetLikedPosts handles GET /user/posts/like/:userID.
func (s *Server) GetLikedPosts(c *fiber.Ctx) error {
	p, ok := s.principal(c)
	if !ok {
		return nil
	}

	likes, err := s.engagementService.ListLikes(c.Context(), p, c.Params("userID"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(likes)
}

// GetSavedPosts handles GET /user/posts/save/:userID.
func (s *Server) GetSavedPosts(c *fiber.Ctx) error {
	p, ok := s.principal(c)
	if !ok {
		return nil
	}

	saves, err := s.engagementService.ListSaves(c.Context(), p, c.Params("userID"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(saves)
}
