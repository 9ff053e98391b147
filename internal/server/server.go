// Package server contains the HTTP handlers for the application's API
// endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"clubverse/internal/assistant"
	"clubverse/internal/cache"
	"clubverse/internal/config"
	"clubverse/internal/middleware"
	"clubverse/internal/repository"
	"clubverse/internal/service"
	"clubverse/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	collections    *store.Collections
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo    repository.UserRepository
	adminRepo   repository.AdminRepository
	postRepo    repository.PostRepository
	likeRepo    repository.EngagementRepository
	saveRepo    repository.EngagementRepository
	commentRepo repository.CommentRepository

	authService       *service.AuthService
	postService       *service.PostService
	engagementService *service.EngagementService
	commentService    *service.CommentService
	directoryService  *service.DirectoryService
	assistant         *assistant.Assistant
}

// NewServer creates a server instance, opening the collections and
// connecting to Redis.
func NewServer(cfg *config.Config) (*Server, error) {
	collections, err := store.Open(cfg.DataDir, middleware.Logger)
	if err != nil {
		return nil, fmt.Errorf("open collections: %w", err)
	}

	redisClient := cache.InitRedis(cfg.RedisURL, middleware.Logger)

	return NewServerWithDeps(cfg, collections, redisClient), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the collections
// and Redis itself.
func NewServerWithDeps(cfg *config.Config, collections *store.Collections, redisClient *redis.Client) *Server {
	s := &Server{
		config:         cfg,
		collections:    collections,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("clubverse-api"),

		userRepo:    repository.NewUserRepository(collections.Users),
		adminRepo:   repository.NewAdminRepository(collections.Admins),
		postRepo:    repository.NewPostRepository(collections.Posts),
		likeRepo:    repository.NewEngagementRepository(collections.Likes),
		saveRepo:    repository.NewEngagementRepository(collections.Saves),
		commentRepo: repository.NewCommentRepository(collections.Comments),
	}

	feed := cache.NewFeedCache(redisClient, middleware.Logger)

	s.authService = service.NewAuthService(s.userRepo, s.adminRepo, cfg.JWTSecret, cfg.AdminSecurityKey)
	s.postService = service.NewPostService(s.postRepo, feed, cfg.StrictPostOwnership)
	s.engagementService = service.NewEngagementService(s.likeRepo, s.saveRepo)
	s.commentService = service.NewCommentService(s.commentRepo, s.postRepo)
	s.directoryService = service.NewDirectoryService(s.userRepo, s.adminRepo)
	s.assistant = assistant.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, middleware.Logger)

	middleware.InitMiddleware(cfg.JWTSecret)

	return s
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Distributed tracing
	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS runs before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application. The paths mirror
// the web client's existing API contract.
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	app.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	app.Post("/super/createAdmin", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "create_admin"), s.CreateAdmin)
	app.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Authenticated profile
	app.Get("/profile", middleware.AuthRequired, s.Profile)

	// User routes
	user := app.Group("/user", middleware.AuthRequired)
	user.Get("/clubs", s.GetClubs)
	user.Get("/clubPosts", s.GetClubPosts)
	user.Get("/clubPosts/:id", s.GetClubPost)
	user.Get("/getUserDetails/like/save", s.GetUserDetails)
	user.Post("/userLike", s.LikePost)
	user.Post("/saveUserPost", s.SavePost)
	user.Get("/posts/like/:userID", s.GetLikedPosts)
	user.Get("/posts/save/:userID", s.GetSavedPosts)
	user.Get("/comment/getComments/:postId", s.GetComments)
	user.Post("/comment/addComment/:postId", middleware.RateLimit(
		s.redis, 10, time.Minute, "add_comment"), s.AddComment)
	user.Delete("/comment/deleteComment/:commentId", s.DeleteComment)
	user.Post("/summarize-post", middleware.RateLimit(
		s.redis, 5, time.Minute, "summarize"), s.SummarizePost)
	user.Post("/ai-chat", middleware.RateLimit(
		s.redis, 15, time.Minute, "ai_chat"), s.AIChat)
	user.Post("/joinClub", s.JoinClub)

	// Admin routes
	admin := app.Group("/admin", middleware.AuthRequired, middleware.RequireAdmin)
	admin.Post("/addClubPost", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "create_post"), s.AddClubPost)
	admin.Get("/clubPost/:postId", s.GetAdminPost)
	admin.Put("/update/:postId", s.UpdatePost)
	admin.Delete("/delete/clubPosts/:postId", s.DeletePost)
	admin.Get("/get/adminPosts/:adminID", s.GetAdminPosts)
}

// Shutdown releases server resources. The collections persist on every
// mutation, so only Redis needs closing.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return fmt.Errorf("close redis: %w", err)
		}
	}
	return nil
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports whether the server can serve traffic. The
// collections are always ready once loaded; Redis is reported but optional.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "ok"
		if err := s.redis.Ping(c.Context()).Err(); err != nil {
			redisStatus = "unavailable"
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"redis":  redisStatus,
	})
}
