package server

import (
	"clubverse/internal/assistant"
	"clubverse/internal/middleware"
	"clubverse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SummarizePost handles POST /user/summarize-post, producing a short AI
// summary of a post. Answers 503 when no assistant is configured.
func (s *Server) SummarizePost(c *fiber.Ctx) error {
	if s.assistant == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"error":   "AI features are not configured",
		})
	}

	var req struct {
		PostTitle       string   `json:"postTitle"`
		PostDescription string   `json:"postDescription"`
		Coordinators    []string `json:"coordinators"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.PostTitle == "" || req.PostDescription == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Post title and description are required"))
	}

	summary, err := s.assistant.Summarize(c.Context(), req.PostTitle, req.PostDescription, req.Coordinators)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "assistant summarize failed", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to generate summary. Please try again later.",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"summary": summary,
	})
}

// AIChat handles POST /user/ai-chat: the help chatbot. Answers 503 when no
// assistant is configured.
func (s *Server) AIChat(c *fiber.Ctx) error {
	if s.assistant == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"success": false,
			"error":   "AI features are not configured",
		})
	}

	var req struct {
		Message             string                   `json:"message"`
		ConversationHistory []assistant.HistoryEntry `json:"conversationHistory"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Message == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Message is required"))
	}

	response, err := s.assistant.Chat(c.Context(), req.Message, req.ConversationHistory)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "assistant chat failed", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to get AI response. Please try again later.",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"response": response,
	})
}
