// File: database/repository/event/eventMongoCrud.go
package eventRepo

import (
	"fmt"
	"time"

	"meetplan/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new calendar event document.
func (r *MongoEventRepo) Create(event *models.CalendarEvent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if !event.Start.Before(event.End) {
		return fmt.Errorf("event start must be before end")
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to create calendar event: %w", err)
	}
	return nil
}

// Update modifies an existing calendar event document.
func (r *MongoEventRepo) Update(event *models.CalendarEvent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	event.UpdatedAt = time.Now()
	filter := bson.M{"id": event.ID}
	update := bson.M{"$set": event}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update event with id %s: %w", event.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("event with id %s not found", event.ID)
	}
	return nil
}

// Delete removes a calendar event document by its ID.
func (r *MongoEventRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete event with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("event with id %s not found", id)
	}
	return nil
}
