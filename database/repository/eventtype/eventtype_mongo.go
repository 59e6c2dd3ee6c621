package eventTypeRepo

import (
	"context"
	"fmt"
	"time"

	"meetplan/database"
	"meetplan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EventTypeRepository defines persistence operations for event types.
type EventTypeRepository interface {
	Create(et *models.EventType) error
	GetByID(id string) (*models.EventType, error)
	GetAll() ([]models.EventType, error)
	Delete(id string) error
}

// MongoEventTypeRepo implements EventTypeRepository using MongoDB.
type MongoEventTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoEventTypeRepo creates a new instance of EventTypeRepository using MongoDB.
func NewMongoEventTypeRepo() EventTypeRepository {
	coll := database.MongoClient.Database("meetplan").Collection("event_types")
	repo := &MongoEventTypeRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new event type document.
func (r *MongoEventTypeRepo) Create(et *models.EventType) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, et); err != nil {
		return fmt.Errorf("failed to create event type: %w", err)
	}
	return nil
}

// GetByID fetches an event type document by its ID.
func (r *MongoEventTypeRepo) GetByID(id string) (*models.EventType, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var et models.EventType
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&et); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("event type with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch event type with id %s: %w", id, err)
	}
	return &et, nil
}

// GetAll returns every event type document.
func (r *MongoEventTypeRepo) GetAll() ([]models.EventType, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list event types: %w", err)
	}
	defer cursor.Close(ctx)

	var types []models.EventType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode event types: %w", err)
	}
	return types, nil
}

// Delete removes an event type document by its ID.
func (r *MongoEventTypeRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete event type with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("event type with id %s not found", id)
	}
	return nil
}
