// Package service holds the application's business logic behind the HTTP
// handlers: identity and tokens, post lifecycle, the like/save ledgers, and
// comments.
package service

import (
	"context"
	"crypto/subtle"
	"time"

	"clubverse/internal/models"
	"clubverse/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService authenticates credentials and issues identity tokens.
type AuthService struct {
	userRepo         repository.UserRepository
	adminRepo        repository.AdminRepository
	jwtSecret        string
	adminSecurityKey string
}

// NewAuthService creates an AuthService.
func NewAuthService(
	userRepo repository.UserRepository,
	adminRepo repository.AdminRepository,
	jwtSecret string,
	adminSecurityKey string,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		adminRepo:        adminRepo,
		jwtSecret:        jwtSecret,
		adminSecurityKey: adminSecurityKey,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type CreateAdminInput struct {
	Name        string
	Email       string
	Password    string
	ClubName    string
	SecurityKey string
}

type LoginInput struct {
	Email    string
	Password string
	Role     string
}

// LoginResult carries the authenticated record in its public shape and the
// issued token.
type LoginResult struct {
	User  any
	Token string
}

// Register creates a regular user. Registration does not imply login: no
// token is issued.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, models.NewValidationError("All fields are required.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  string(hashed),
		Role:      models.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	// Email uniqueness is enforced atomically by the collection.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateAdmin creates a club admin, gated by the configured security key,
// and issues a token immediately.
func (s *AuthService) CreateAdmin(ctx context.Context, in CreateAdminInput) (*models.Admin, string, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.ClubName == "" || in.SecurityKey == "" {
		return nil, "", models.NewValidationError("All fields are required.")
	}
	if subtle.ConstantTimeCompare([]byte(in.SecurityKey), []byte(s.adminSecurityKey)) != 1 {
		return nil, "", models.NewForbiddenError("Invalid security key.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	admin := &models.Admin{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Password:  string(hashed),
		Role:      models.RoleAdmin,
		ClubName:  in.ClubName,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, "", err
	}

	token, err := IssueToken(s.jwtSecret, models.Principal{
		ID:    admin.ID,
		Email: admin.Email,
		Role:  admin.Role,
		Name:  admin.Name,
	})
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}
	return admin, token, nil
}

// Login authenticates against the collection selected by role and issues a
// token on success.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, models.NewValidationError("All fields are required.")
	}

	var (
		record    any
		hash      string
		principal models.Principal
	)

	switch in.Role {
	case models.RoleUser:
		user, err := s.userRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, models.NewUnauthorizedError("Invalid credentials.")
		}
		record, hash = user.Public(), user.Password
		principal = models.Principal{ID: user.ID, Email: user.Email, Role: user.Role, Name: user.Name}
	case models.RoleAdmin:
		admin, err := s.adminRepo.GetByEmail(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if admin == nil {
			return nil, models.NewUnauthorizedError("Invalid credentials.")
		}
		record, hash = admin.Public(), admin.Password
		principal = models.Principal{ID: admin.ID, Email: admin.Email, Role: admin.Role, Name: admin.Name}
	default:
		return nil, models.NewValidationError("Invalid role specified.")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(in.Password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials.")
	}

	token, err := IssueToken(s.jwtSecret, principal)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &LoginResult{User: record, Token: token}, nil
}

// Verify validates a raw token and returns its principal.
func (s *AuthService) Verify(tokenString string) (*models.Principal, error) {
	return ParseToken(s.jwtSecret, tokenString)
}
