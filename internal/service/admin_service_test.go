package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/campusconnect/backend/internal/models"
)

func newAdminService(users *MockUserRepository) *AdminService {
	return NewAdminService(users, nil, zap.NewNop())
}

func TestSetOrganizerVerification(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAdminService(users)

	id := primitive.NewObjectID()
	users.On("GetByID", mock.Anything, id).
		Return(&models.User{ID: id, Role: models.RoleOrganizer}, nil)
	users.On("Update", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.SetOrganizerVerification(context.Background(), id.Hex(), true)
	require.NoError(t, err)
	assert.True(t, user.IsVerifiedOrganizer)
}

func TestSetOrganizerVerificationRejectsNonOrganizer(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAdminService(users)

	id := primitive.NewObjectID()
	users.On("GetByID", mock.Anything, id).
		Return(&models.User{ID: id, Role: models.RoleStudent}, nil)

	_, err := svc.SetOrganizerVerification(context.Background(), id.Hex(), true)
	assert.ErrorIs(t, err, ErrNotAnOrganizer)
}

func TestSetOrganizerVerificationUnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAdminService(users)

	id := primitive.NewObjectID()
	users.On("GetByID", mock.Anything, id).Return(nil, nil)

	_, err := svc.SetOrganizerVerification(context.Background(), id.Hex(), true)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.SetOrganizerVerification(context.Background(), "garbage", true)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListOrganizersProjection(t *testing.T) {
	users := new(MockUserRepository)
	svc := newAdminService(users)

	created := time.Now()
	users.On("ListByRole", mock.Anything, models.RoleOrganizer).Return([]models.User{
		{
			ID:                  primitive.NewObjectID(),
			Name:                "Orga",
			Email:               "orga@x.com",
			Password:            "should-never-leave-the-store",
			Role:                models.RoleOrganizer,
			IsVerifiedOrganizer: true,
			CreatedAt:           created,
		},
	}, nil)

	accounts, err := svc.ListOrganizers(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "Orga", accounts[0].Name)
	assert.Equal(t, "orga@x.com", accounts[0].Email)
	assert.True(t, accounts[0].IsVerifiedOrganizer)
	assert.Equal(t, created, accounts[0].CreatedAt)
}
