package server

import (
	"clubverse/internal/models"
	"clubverse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddClubPost handles POST /admin/addClubPost. The post's owner is the
// authenticated admin, regardless of any id in the body.
func (s *Server) AddClubPost(c *fiber.Ctx) error {
	p, ok := s.principal(c)
	if !ok {
		return nil
	}

	var req struct {
		ClubName     string                `json:"clubName"`
		Title        string                `json:"title"`
		Description  string                `json:"description"`
		Coordinators *[]models.Coordinator `json:"coordinators"`
		Image        string                `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Create(c.Context(), p, service.CreatePostInput{
		ClubName:     req.ClubName,
		Title:        req.Title,
		Description:  req.Description,
		Coordinators: req.Coordinators,
		Image:        req.Image,
	})
	if err != nil {
		return models.RespondWithAppError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// GetClubPosts handles GET /user/clubPosts: the newest-first feed, with
// optional limit/offset query parameters.
func (s *Server) GetClubPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListAll(c.Context())
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(page(posts, parsePagination(c, 0)))
}

// GetClubPost handles GET /user/clubPosts/:id.
func (s *Server) GetClubPost(c *fiber.Ctx) error {
	post, err := s.postService.Get(c.Context(), c.Params("id"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(post)
}

// GetAdminPost handles GET /admin/clubPost/:postId.
func (s *Server) GetAdminPost(c *fiber.Ctx) error {
	post, err := s.postService.Get(c.Context(), c.Params("postId"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(post)
}

// UpdatePost handles PUT /admin/update/:postId. Fields absent from the body
// keep their stored values.
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	p, ok := s.principal(c)
	if !ok {
		return nil
	}

	var patch models.PostPatch
	if err := c.BodyParser(&patch); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Update(c.Context(), p, c.Params("postId"), patch)
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /admin/delete/clubPosts/:postId.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	p, ok := s.principal(c)
	if !ok {
		return nil
	}

	if err := s.postService.Delete(c.Context(), p, c.Params("postId")); err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted successfully."})
}

// GetAdminPosts handles GET /admin/get/adminPosts/:adminID.
func (s *Server) GetAdminPosts(c *fiber.Ctx) error {
	p, ok := s.principal(c)
	if !ok {
		return nil
	}

	posts, err := s.postService.ListByAdmin(c.Context(), p, c.Params("adminID"))
	if err != nil {
		return models.RespondWithAppError(c, err)
	}
	return c.JSON(fiber.Map{"posts": posts})
}
