package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories an event must belong to.
var Categories = []string{"Tech", "Cultural", "Sports", "Workshop", "Seminar", "Fest", "Competition"}

// ValidCategory reports whether c is a known event category.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// NormalizeTags trims every tag and drops empty entries.
func NormalizeTags(in []string) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type Event struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description" json:"description"`
	PosterURL        string             `bson:"posterUrl" json:"posterUrl"`
	RegistrationLink string             `bson:"registrationLink" json:"registrationLink"`
	Deadline         time.Time          `bson:"deadline" json:"deadline"`
	EventDate        time.Time          `bson:"eventDate" json:"eventDate"`
	Category         string             `bson:"category" json:"category"`
	Tags             []string           `bson:"tags" json:"tags"`
	Organizer        primitive.ObjectID `bson:"organizer" json:"organizer"`
	IsBlocked        bool               `bson:"isBlocked" json:"isBlocked"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrganizerSummary is the expanded organizer reference embedded in event
// responses. Email is only set on admin listings.
type OrganizerSummary struct {
	ID                  primitive.ObjectID `json:"id"`
	Name                string             `json:"name"`
	Email               string             `json:"email,omitempty"`
	IsVerifiedOrganizer bool               `json:"isVerifiedOrganizer"`
}

// EventResponse is an event with its organizer reference expanded.
type EventResponse struct {
	ID               primitive.ObjectID `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	PosterURL        string             `json:"posterUrl"`
	RegistrationLink string             `json:"registrationLink"`
	Deadline         time.Time          `json:"deadline"`
	EventDate        time.Time          `json:"eventDate"`
	Category         string             `json:"category"`
	Tags             []string           `json:"tags"`
	Organizer        OrganizerSummary   `json:"organizer"`
	IsBlocked        bool               `json:"isBlocked"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

type CreateEventRequest struct {
	Title            string    `json:"title" validate:"required"`
	Description      string    `json:"description"`
	PosterURL        string    `json:"posterUrl"`
	RegistrationLink string    `json:"registrationLink"`
	Deadline         time.Time `json:"deadline" validate:"required"`
	EventDate        time.Time `json:"eventDate" validate:"required"`
	Category         string    `json:"category" validate:"required"`
	Tags             []string  `json:"tags"`
}

// UpdateEventRequest carries a partial update: nil fields are left unchanged.
type UpdateEventRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	PosterURL        *string    `json:"posterUrl"`
	RegistrationLink *string    `json:"registrationLink"`
	Deadline         *time.Time `json:"deadline"`
	EventDate        *time.Time `json:"eventDate"`
	Category         *string    `json:"category"`
	Tags             *[]string  `json:"tags"`
	IsBlocked        *bool      `json:"isBlocked"`
}
