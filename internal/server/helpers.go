package server

import (
	"clubverse/internal/middleware"
	"clubverse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Pagination holds parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

const maxPaginationLimit = 100

// parsePagination extracts limit and offset query parameters with the given
// default limit. limit=0 means "no limit was requested".
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit < 0 {
		limit = defaultLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{Limit: limit, Offset: offset}
}

// page applies pagination to a slice of posts. A zero limit returns
// everything from the offset on.
func page(posts []models.Post, p Pagination) []models.Post {
	if p.Offset >= len(posts) {
		return []models.Post{}
	}
	posts = posts[p.Offset:]
	if p.Limit > 0 && p.Limit < len(posts) {
		posts = posts[:p.Limit]
	}
	return posts
}

// principal returns the authenticated principal or writes a 401. Handlers
// behind AuthRequired always find one; the check guards misconfigured routes.
func (s *Server) principal(c *fiber.Ctx) (models.Principal, bool) {
	p, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}
	return p, ok
}
