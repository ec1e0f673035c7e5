package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/campusconnect/backend/internal/models"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/campusconnect/backend/pkg/email"
)

type AdminService struct {
	users  repository.UserRepository
	mailer *email.EmailService
	logger *zap.Logger
}

func NewAdminService(users repository.UserRepository, mailer *email.EmailService, logger *zap.Logger) *AdminService {
	return &AdminService{
		users:  users,
		mailer: mailer,
		logger: logger,
	}
}

// ListOrganizers returns all organizer accounts, newest first.
func (s *AdminService) ListOrganizers(ctx context.Context) ([]models.OrganizerAccount, error) {
	users, err := s.users.ListByRole(ctx, models.RoleOrganizer)
	if err != nil {
		return nil, err
	}

	accounts := make([]models.OrganizerAccount, 0, len(users))
	for _, u := range users {
		accounts = append(accounts, models.OrganizerAccount{
			ID:                  u.ID,
			Name:                u.Name,
			Email:               u.Email,
			IsVerifiedOrganizer: u.IsVerifiedOrganizer,
			CreatedAt:           u.CreatedAt,
		})
	}
	return accounts, nil
}

// SetOrganizerVerification flags an organizer account as vetted (or revokes
// the flag). Only accounts with the organizer role can be verified.
func (s *AdminService) SetOrganizerVerification(ctx context.Context, idHex string, verified bool) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Role != models.RoleOrganizer {
		return nil, ErrNotAnOrganizer
	}

	wasVerified := user.IsVerifiedOrganizer
	user.IsVerifiedOrganizer = verified
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if verified && !wasVerified && s.mailer != nil {
		go func() {
			if err := s.mailer.SendOrganizerVerifiedEmail(user.Email, user.Name); err != nil {
				s.logger.Warn("organizer verified email failed", zap.String("email", user.Email), zap.Error(err))
			}
		}()
	}

	s.logger.Info("organizer verification updated",
		zap.String("userId", user.ID.Hex()),
		zap.Bool("verified", verified),
	)
	return user, nil
}
