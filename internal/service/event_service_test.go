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
	"github.com/campusconnect/backend/internal/repository"
)

func newEventService(events *MockEventRepository, users *MockUserRepository) *EventService {
	return NewEventService(events, users, nil, zap.NewNop())
}

func organizerUser() *models.User {
	return &models.User{
		ID:   primitive.NewObjectID(),
		Name: "Orga",
		Role: models.RoleOrganizer,
	}
}

func TestCreateSetsOwnerAndUnblocked(t *testing.T) {
	events := new(MockEventRepository)
	users := new(MockUserRepository)
	svc := newEventService(events, users)
	actor := organizerUser()

	var stored *models.Event
	events.On("Create", mock.Anything, mock.AnythingOfType("*models.Event")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.Event)
			stored.ID = primitive.NewObjectID()
		}).
		Return(nil)
	users.On("GetByIDs", mock.Anything, []primitive.ObjectID{actor.ID}).
		Return([]models.User{*actor}, nil)

	resp, err := svc.Create(context.Background(), actor, models.CreateEventRequest{
		Title:     "  Hack Night ",
		Deadline:  time.Now().Add(48 * time.Hour),
		EventDate: time.Now().Add(24 * time.Hour),
		Category:  "Tech",
		Tags:      []string{" go ", "", "backend"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Hack Night", stored.Title)
	assert.Equal(t, actor.ID, stored.Organizer)
	assert.False(t, stored.IsBlocked)
	assert.Equal(t, []string{"go", "backend"}, stored.Tags)
	assert.Equal(t, "Orga", resp.Organizer.Name)
}

func TestCreateRejectsUnknownCategory(t *testing.T) {
	svc := newEventService(new(MockEventRepository), new(MockUserRepository))

	_, err := svc.Create(context.Background(), organizerUser(), models.CreateEventRequest{
		Title:     "Hack Night",
		Deadline:  time.Now(),
		EventDate: time.Now(),
		Category:  "Knitting",
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCreateAllowsDeadlineAfterEventDate(t *testing.T) {
	events := new(MockEventRepository)
	users := new(MockUserRepository)
	svc := newEventService(events, users)
	actor := organizerUser()

	events.On("Create", mock.Anything, mock.AnythingOfType("*models.Event")).Return(nil)
	users.On("GetByIDs", mock.Anything, mock.Anything).Return([]models.User{*actor}, nil)

	_, err := svc.Create(context.Background(), actor, models.CreateEventRequest{
		Title:     "Late Deadline",
		Deadline:  time.Now().Add(72 * time.Hour),
		EventDate: time.Now().Add(24 * time.Hour),
		Category:  "Workshop",
	})
	assert.NoError(t, err)
}

func TestUpdateRejectsNonOwner(t *testing.T) {
	events := new(MockEventRepository)
	svc := newEventService(events, new(MockUserRepository))

	owner := primitive.NewObjectID()
	eventID := primitive.NewObjectID()
	events.On("GetByID", mock.Anything, eventID).
		Return(&models.Event{ID: eventID, Organizer: owner}, nil)

	intruder := organizerUser()
	_, err := svc.Update(context.Background(), intruder, eventID.Hex(), models.UpdateEventRequest{})
	assert.ErrorIs(t, err, ErrNotEventOwner)
}

func TestUpdateBlockedEventRejectsOwnerButNotAdmin(t *testing.T) {
	owner := organizerUser()
	eventID := primitive.NewObjectID()

	blocked := func() *models.Event {
		return &models.Event{ID: eventID, Organizer: owner.ID, IsBlocked: true}
	}

	events := new(MockEventRepository)
	svc := newEventService(events, new(MockUserRepository))
	events.On("GetByID", mock.Anything, eventID).Return(blocked(), nil)

	_, err := svc.Update(context.Background(), owner, eventID.Hex(), models.UpdateEventRequest{})
	assert.ErrorIs(t, err, ErrEventBlocked)

	admin := &models.User{ID: primitive.NewObjectID(), Role: models.RoleAdmin}
	events2 := new(MockEventRepository)
	users2 := new(MockUserRepository)
	svc2 := newEventService(events2, users2)
	events2.On("GetByID", mock.Anything, eventID).Return(blocked(), nil)
	events2.On("Update", mock.Anything, mock.AnythingOfType("*models.Event")).Return(nil)
	users2.On("GetByIDs", mock.Anything, mock.Anything).Return([]models.User{*owner}, nil)

	unblock := false
	resp, err := svc2.Update(context.Background(), admin, eventID.Hex(), models.UpdateEventRequest{
		IsBlocked: &unblock,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsBlocked)
}

func TestUpdateOwnerCannotToggleBlockFlag(t *testing.T) {
	owner := organizerUser()
	eventID := primitive.NewObjectID()

	events := new(MockEventRepository)
	users := new(MockUserRepository)
	svc := newEventService(events, users)

	events.On("GetByID", mock.Anything, eventID).
		Return(&models.Event{ID: eventID, Organizer: owner.ID}, nil)
	events.On("Update", mock.Anything, mock.AnythingOfType("*models.Event")).Return(nil)
	users.On("GetByIDs", mock.Anything, mock.Anything).Return([]models.User{*owner}, nil)

	block := true
	resp, err := svc.Update(context.Background(), owner, eventID.Hex(), models.UpdateEventRequest{
		IsBlocked: &block,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsBlocked)
}

func TestUpdateIgnoresUnknownCategory(t *testing.T) {
	owner := organizerUser()
	eventID := primitive.NewObjectID()

	events := new(MockEventRepository)
	users := new(MockUserRepository)
	svc := newEventService(events, users)

	events.On("GetByID", mock.Anything, eventID).
		Return(&models.Event{ID: eventID, Organizer: owner.ID, Category: "Tech"}, nil)
	events.On("Update", mock.Anything, mock.AnythingOfType("*models.Event")).Return(nil)
	users.On("GetByIDs", mock.Anything, mock.Anything).Return([]models.User{*owner}, nil)

	bogus := "Knitting"
	resp, err := svc.Update(context.Background(), owner, eventID.Hex(), models.UpdateEventRequest{
		Category: &bogus,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tech", resp.Category)
}

func TestGetPublicHidesBlockedAndMissing(t *testing.T) {
	events := new(MockEventRepository)
	svc := newEventService(events, new(MockUserRepository))

	blockedID := primitive.NewObjectID()
	missingID := primitive.NewObjectID()
	events.On("GetByID", mock.Anything, blockedID).
		Return(&models.Event{ID: blockedID, IsBlocked: true}, nil)
	events.On("GetByID", mock.Anything, missingID).Return(nil, nil)

	_, err := svc.GetPublic(context.Background(), blockedID.Hex())
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = svc.GetPublic(context.Background(), missingID.Hex())
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = svc.GetPublic(context.Background(), "not-a-hex-id")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestRecommendedWithoutInterestsFallsBackToSoonest(t *testing.T) {
	events := new(MockEventRepository)
	users := new(MockUserRepository)
	svc := newEventService(events, users)

	events.On("List", mock.Anything, repository.EventFilter{Limit: 20}).
		Return([]models.Event{}, nil)

	_, err := svc.Recommended(context.Background(), &models.User{ID: primitive.NewObjectID()})
	require.NoError(t, err)
	events.AssertExpectations(t)
}

func TestRecommendedUsesInterests(t *testing.T) {
	events := new(MockEventRepository)
	users := new(MockUserRepository)
	svc := newEventService(events, users)

	interests := []string{"Coding"}
	events.On("ListByInterests", mock.Anything, interests, int64(20)).
		Return([]models.Event{}, nil)

	_, err := svc.Recommended(context.Background(), &models.User{
		ID:        primitive.NewObjectID(),
		Interests: interests,
	})
	require.NoError(t, err)
	events.AssertExpectations(t)
}

func TestDeleteMissingEvent(t *testing.T) {
	events := new(MockEventRepository)
	svc := newEventService(events, new(MockUserRepository))

	id := primitive.NewObjectID()
	events.On("Delete", mock.Anything, id).Return(false, nil)

	err := svc.Delete(context.Background(), id.Hex())
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestListPublicAnchorsDateToLocalMidnight(t *testing.T) {
	events := new(MockEventRepository)
	users := new(MockUserRepository)
	svc := newEventService(events, users)

	wantDay := time.Date(2026, 1, 15, 0, 0, 0, 0, time.Local)
	events.On("List", mock.Anything, mock.MatchedBy(func(f repository.EventFilter) bool {
		return f.Day != nil && f.Day.Equal(wantDay) && f.Day.Location() == time.Local
	})).Return([]models.Event{}, nil)

	_, err := svc.ListPublic(context.Background(), "", "", "2026-01-15")
	require.NoError(t, err)
	events.AssertExpectations(t)
}

func TestListPublicIgnoresInvalidCategoryAndDate(t *testing.T) {
	events := new(MockEventRepository)
	users := new(MockUserRepository)
	svc := newEventService(events, users)

	events.On("List", mock.Anything, repository.EventFilter{Search: "expo"}).
		Return([]models.Event{}, nil)

	_, err := svc.ListPublic(context.Background(), "Knitting", "expo", "not-a-date")
	require.NoError(t, err)
	events.AssertExpectations(t)
}
