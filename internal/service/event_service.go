package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/campusconnect/backend/internal/models"
	"github.com/campusconnect/backend/internal/repository"
	"github.com/campusconnect/backend/pkg/cache"
)

const (
	recommendedLimit = 20
	eventCacheTTL    = time.Minute
	eventCachePrefix = "event:"
)

type EventService struct {
	events repository.EventRepository
	users  repository.UserRepository
	cache  *cache.Client
	logger *zap.Logger
}

func NewEventService(events repository.EventRepository, users repository.UserRepository, cacheClient *cache.Client, logger *zap.Logger) *EventService {
	return &EventService{
		events: events,
		users:  users,
		cache:  cacheClient,
		logger: logger,
	}
}

// ListPublic returns non-blocked events, soonest first. An unknown category
// and an unparsable date are ignored rather than rejected.
func (s *EventService) ListPublic(ctx context.Context, category, search, date string) ([]models.EventResponse, error) {
	filter := repository.EventFilter{
		Search: strings.TrimSpace(search),
	}
	if models.ValidCategory(category) {
		filter.Category = category
	}
	if date != "" {
		if day, err := parseDay(date); err == nil {
			filter.Day = &day
		}
	}

	events, err := s.events.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return s.expandOrganizers(ctx, events, false)
}

// Recommended returns up to 20 non-blocked events matching the user's
// interests by category or tag. Without interests it falls back to the
// soonest events.
func (s *EventService) Recommended(ctx context.Context, user *models.User) ([]models.EventResponse, error) {
	var (
		events []models.Event
		err    error
	)
	if len(user.Interests) == 0 {
		events, err = s.events.List(ctx, repository.EventFilter{Limit: recommendedLimit})
	} else {
		events, err = s.events.ListByInterests(ctx, user.Interests, recommendedLimit)
	}
	if err != nil {
		return nil, err
	}
	return s.expandOrganizers(ctx, events, false)
}

// GetPublic returns a single visible event. Blocked, missing, and malformed
// ids all surface as not found.
func (s *EventService) GetPublic(ctx context.Context, idHex string) (*models.EventResponse, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrEventNotFound
	}

	if cached, _ := s.cache.Get(ctx, eventCachePrefix+idHex); cached != nil {
		var resp models.EventResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil || event.IsBlocked {
		return nil, ErrEventNotFound
	}

	resp, err := s.expandOrganizer(ctx, event, false)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(resp); err == nil {
		s.cache.Set(ctx, eventCachePrefix+idHex, payload, eventCacheTTL)
	}
	return resp, nil
}

// Create stores a new event owned by the acting user.
func (s *EventService) Create(ctx context.Context, actor *models.User, req models.CreateEventRequest) (*models.EventResponse, error) {
	if !models.ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	event := &models.Event{
		Title:            strings.TrimSpace(req.Title),
		Description:      strings.TrimSpace(req.Description),
		PosterURL:        strings.TrimSpace(req.PosterURL),
		RegistrationLink: strings.TrimSpace(req.RegistrationLink),
		Deadline:         req.Deadline,
		EventDate:        req.EventDate,
		Category:         req.Category,
		Tags:             models.NormalizeTags(req.Tags),
		Organizer:        actor.ID,
		IsBlocked:        false,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("event created",
		zap.String("eventId", event.ID.Hex()),
		zap.String("organizerId", actor.ID.Hex()),
	)
	return s.expandOrganizer(ctx, event, false)
}

// Update applies a partial update. Only the owner or an admin may edit, a
// blocked event rejects its owner, and only an admin can toggle the block
// flag. An unknown category in the payload is ignored.
func (s *EventService) Update(ctx context.Context, actor *models.User, idHex string, req models.UpdateEventRequest) (*models.EventResponse, error) {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrEventNotFound
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	isAdmin := actor.Role == models.RoleAdmin
	if !isAdmin && event.Organizer != actor.ID {
		return nil, ErrNotEventOwner
	}
	if !isAdmin && event.IsBlocked {
		return nil, ErrEventBlocked
	}

	if req.Title != nil {
		event.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		event.Description = strings.TrimSpace(*req.Description)
	}
	if req.PosterURL != nil {
		event.PosterURL = strings.TrimSpace(*req.PosterURL)
	}
	if req.RegistrationLink != nil {
		event.RegistrationLink = strings.TrimSpace(*req.RegistrationLink)
	}
	if req.Deadline != nil {
		event.Deadline = *req.Deadline
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.Category != nil && models.ValidCategory(*req.Category) {
		event.Category = *req.Category
	}
	if req.Tags != nil {
		event.Tags = models.NormalizeTags(*req.Tags)
	}
	if isAdmin && req.IsBlocked != nil {
		event.IsBlocked = *req.IsBlocked
	}

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, eventCachePrefix+idHex)

	return s.expandOrganizer(ctx, event, false)
}

// Delete removes an event permanently.
func (s *EventService) Delete(ctx context.Context, idHex string) error {
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return ErrEventNotFound
	}

	deleted, err := s.events.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrEventNotFound
	}
	s.cache.Delete(ctx, eventCachePrefix+idHex)
	return nil
}

// ListAll returns every event including blocked ones, with organizer email
// exposed. Admin use only.
func (s *EventService) ListAll(ctx context.Context) ([]models.EventResponse, error) {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.expandOrganizers(ctx, events, true)
}

func (s *EventService) expandOrganizer(ctx context.Context, event *models.Event, withEmail bool) (*models.EventResponse, error) {
	resps, err := s.expandOrganizers(ctx, []models.Event{*event}, withEmail)
	if err != nil {
		return nil, err
	}
	return &resps[0], nil
}

// expandOrganizers resolves organizer references in bulk and embeds a
// name/verification summary into each event.
func (s *EventService) expandOrganizers(ctx context.Context, events []models.Event, withEmail bool) ([]models.EventResponse, error) {
	ids := make([]primitive.ObjectID, 0, len(events))
	seen := make(map[primitive.ObjectID]bool, len(events))
	for _, e := range events {
		if !seen[e.Organizer] {
			seen[e.Organizer] = true
			ids = append(ids, e.Organizer)
		}
	}

	byID := make(map[primitive.ObjectID]models.User, len(ids))
	if len(ids) > 0 {
		organizers, err := s.users.GetByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range organizers {
			byID[u.ID] = u
		}
	}

	resps := make([]models.EventResponse, 0, len(events))
	for _, e := range events {
		summary := models.OrganizerSummary{ID: e.Organizer}
		if u, ok := byID[e.Organizer]; ok {
			summary.Name = u.Name
			summary.IsVerifiedOrganizer = u.IsVerifiedOrganizer
			if withEmail {
				summary.Email = u.Email
			}
		}
		resps = append(resps, models.EventResponse{
			ID:               e.ID,
			Title:            e.Title,
			Description:      e.Description,
			PosterURL:        e.PosterURL,
			RegistrationLink: e.RegistrationLink,
			Deadline:         e.Deadline,
			EventDate:        e.EventDate,
			Category:         e.Category,
			Tags:             e.Tags,
			Organizer:        summary,
			IsBlocked:        e.IsBlocked,
			CreatedAt:        e.CreatedAt,
			UpdatedAt:        e.UpdatedAt,
		})
	}
	return resps, nil
}

// parseDay accepts an ISO date or datetime and returns the day it falls on.
// Plain dates are anchored to server-local midnight so that day-window
// queries use local day boundaries.
func parseDay(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
