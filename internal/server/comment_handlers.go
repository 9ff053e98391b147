package server

import (
	"clubverse/internal/models"
	"clubverse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /user/comment/getComments/:postId, oldest-first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	views, err := s.commentService.List(c.Context(), c.Params("postId"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(views)
}

// AddComment handles POST /user/comment/addComment/:postId. The author is
// the authenticated principal, regardless of any names in the body.
func (s *Server) AddComment(c *fiber.Ctx) error {
	p, ok := s.principal(c)
	if !ok {
		return nil
	}

	var req struct {
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.Add(c.Context(), p, service.AddCommentInput{
		PostID: c.Params("postId"),
		Text:   req.Comment,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Comment added successfully",
		"comment": comment.View(),
	})
}

// DeleteComment handles DELETE /user/comment/deleteComment/:commentId.
// Unknown ids yield 404; someone else's comment yields 403.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	p, ok := s.principal(c)
	if !ok {
		return nil
	}

	if err := s.commentService.Delete(c.Context(), p, c.Params("commentId")); err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Comment deleted successfully",
	})
}
