package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusconnect/backend/internal/models"
)

// EventFilter narrows the public event listing. Zero values mean "no filter".
type EventFilter struct {
	Category string
	Search   string
	Day      *time.Time
	Limit    int64
}

// EventRepository is the persistence boundary for events. GetByID returns
// (nil, nil) when no document matches.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	List(ctx context.Context, filter EventFilter) ([]models.Event, error)
	ListByInterests(ctx context.Context, interests []string, limit int64) ([]models.Event, error)
	ListAll(ctx context.Context) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type mongoEventRepository struct {
	col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) EventRepository {
	return &mongoEventRepository{col: db.Collection("events")}
}

func (r *mongoEventRepository) Create(ctx context.Context, event *models.Event) error {
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	event.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *mongoEventRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find event by id: %w", err)
	}
	return &event, nil
}

// List returns non-blocked events sorted by eventDate then deadline, both
// ascending (soonest first).
func (r *mongoEventRepository) List(ctx context.Context, filter EventFilter) ([]models.Event, error) {
	query := bson.M{"isBlocked": false}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"description": re},
		}
	}
	if filter.Day != nil {
		start, end := dayWindow(*filter.Day)
		query["eventDate"] = bson.M{"$gte": start, "$lte": end}
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "eventDate", Value: 1},
		{Key: "deadline", Value: 1},
	})
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	return r.find(ctx, query, opts)
}

// ListByInterests returns non-blocked events whose category or tags intersect
// the given interests, soonest first.
func (r *mongoEventRepository) ListByInterests(ctx context.Context, interests []string, limit int64) ([]models.Event, error) {
	query := bson.M{
		"isBlocked": false,
		"$or": bson.A{
			bson.M{"category": bson.M{"$in": interests}},
			bson.M{"tags": bson.M{"$in": interests}},
		},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "eventDate", Value: 1}}).
		SetLimit(limit)

	return r.find(ctx, query, opts)
}

// ListAll returns every event including blocked ones, newest first.
func (r *mongoEventRepository) ListAll(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return r.find(ctx, bson.M{}, opts)
}

func (r *mongoEventRepository) Update(ctx context.Context, event *models.Event) error {
	event.UpdatedAt = time.Now()
	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": event.ID}, event)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (r *mongoEventRepository) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete event: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// dayWindow returns the inclusive bounds of the calendar day t falls on, in
// t's location: midnight through 23:59:59.999. Computed via AddDate so DST
// transition days keep their real length.
func dayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 0, 1).Add(-time.Millisecond)
	return start, end
}

func (r *mongoEventRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]models.Event, error) {
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer cur.Close(ctx)

	var events []models.Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}
