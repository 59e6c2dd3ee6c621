// File: database/repository/event/eventMongoQueries.go
package eventRepo

import (
	"fmt"
	"time"

	"meetplan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByID fetches a calendar event document by its ID.
func (r *MongoEventRepo) GetByID(id string) (*models.CalendarEvent, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var event models.CalendarEvent
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("event with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch event with id %s: %w", id, err)
	}
	return &event, nil
}

// GetByUser returns every calendar event belonging to the user, ordered by start.
func (r *MongoEventRepo) GetByUser(userID string) ([]models.CalendarEvent, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var events []models.CalendarEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events for user %s: %w", userID, err)
	}
	return events, nil
}

// GetByType returns every calendar event of the given type.
func (r *MongoEventRepo) GetByType(typeID string) ([]models.CalendarEvent, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"typeId": typeID})
	if err != nil {
		return nil, fmt.Errorf("failed to list events of type %s: %w", typeID, err)
	}
	defer cursor.Close(ctx)

	var events []models.CalendarEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events of type %s: %w", typeID, err)
	}
	return events, nil
}

// GetOverlapping returns the user's events overlapping [from, to).
// The half-open comparison mirrors the availability engine: an event
// ending exactly at `from` or starting exactly at `to` is excluded.
func (r *MongoEventRepo) GetOverlapping(userID string, from, to time.Time) ([]models.CalendarEvent, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"userId": userID,
		"start":  bson.M{"$lt": to},
		"end":    bson.M{"$gt": from},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping events for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var events []models.CalendarEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode overlapping events for user %s: %w", userID, err)
	}
	return events, nil
}
