package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/campusconnect/backend/internal/models"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/campusconnect/backend/pkg/bcrypt"
	"github.com/campusconnect/backend/pkg/email"
	"github.com/campusconnect/backend/pkg/jwt"
)

type AuthService struct {
	users  repository.UserRepository
	tokens *jwt.Manager
	mailer *email.EmailService
	logger *zap.Logger
}

func NewAuthService(users repository.UserRepository, tokens *jwt.Manager, mailer *email.EmailService, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		mailer: mailer,
		logger: logger,
	}
}

// Register creates an account and returns it with a session token. Unknown
// roles fall back to student and unknown interests are dropped.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	emailAddr := NormalizeEmail(req.Email)

	existing, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     emailAddr,
		Password:  hashed,
		Role:      models.NormalizeRole(req.Role),
		Interests: models.FilterInterests(req.Interests),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID.Hex(), string(user.Role))
	if err != nil {
		return nil, err
	}

	if s.mailer != nil {
		go func() {
			if err := s.mailer.SendWelcomeEmail(user.Email, user.Name); err != nil {
				s.logger.Warn("welcome email failed", zap.String("email", user.Email), zap.Error(err))
			}
		}()
	}

	return &models.AuthResponse{User: *user, Token: token}, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password yield the same error.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID.Hex(), string(user.Role))
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{User: *user, Token: token}, nil
}

// NormalizeEmail lowercases and trims an email address for storage and lookup.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
