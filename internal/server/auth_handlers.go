package server

import (
	"errors"

	"clubverse/internal/models"
	"clubverse/internal/observability"
	"clubverse/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /register. Registration creates a regular user and
// does not issue a token; the client logs in afterwards.
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondAuthError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.authService.Register(c.Context(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		observability.AuthAttempts.WithLabelValues("register_failed").Inc()
		return respondAuthError(c, err)
	}

	observability.AuthAttempts.WithLabelValues("register_ok").Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"auth":    true,
		"user":    user.Public(),
		"message": "User registered successfully",
	})
}

// CreateAdmin handles POST /super/createAdmin. Gated by the security key;
// issues a token immediately so the new admin is logged in.
func (s *Server) CreateAdmin(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		ClubName    string `json:"clubName"`
		SecurityKey string `json:"securityKey"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondAuthError(c, models.NewValidationError("Invalid request body"))
	}

	admin, token, err := s.authService.CreateAdmin(c.Context(), service.CreateAdminInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		ClubName:    req.ClubName,
		SecurityKey: req.SecurityKey,
	})
	if err != nil {
		observability.AuthAttempts.WithLabelValues("create_admin_failed").Inc()
		return respondAuthError(c, err)
	}

	observability.AuthAttempts.WithLabelValues("create_admin_ok").Inc()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"auth":    true,
		"user":    admin.Public(),
		"token":   token,
		"message": "Admin created successfully",
	})
}

// Login handles POST /login. The role in the request selects which
// collection the credentials are checked against.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondAuthError(c, models.NewValidationError("Invalid request body"))
	}

	result, err := s.authService.Login(c.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		observability.AuthAttempts.WithLabelValues("login_failed").Inc()
		return respondAuthError(c, err)
	}

	observability.AuthAttempts.WithLabelValues("login_ok").Inc()
	return c.JSON(fiber.Map{
		"auth":  true,
		"user":  result.User,
		"token": result.Token,
	})
}

// respondAuthError writes the auth-shaped error envelope the web client
// expects from the three credential endpoints.
func respondAuthError(c *fiber.Ctx, err error) error {
	status := models.StatusForError(err)
	message := err.Error()
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}
	return c.Status(status).JSON(fiber.Map{
		"auth":  false,
		"error": message,
	})
}
