// File: database/repository/user/userMongoQueries.go
package userRepo

import (
	"fmt"
	"strings"
	"time"

	"meetplan/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetByID fetches a user document by its ID.
func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmail fetches a user document by email.
func (r *MongoUserRepo) GetByEmail(email string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user with email %s not found", email)
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}

// GetByName resolves a participant name to a user. It tries an exact
// "first last" match before falling back to matching either name part,
// so partial names in a meeting request still resolve.
func (r *MongoUserRepo) GetByName(name string) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fullName := strings.TrimSpace(name)
	if fullName == "" {
		return nil, fmt.Errorf("empty participant name")
	}

	var user models.User
	if first, last, ok := strings.Cut(fullName, " "); ok {
		err := r.coll.FindOne(ctx, bson.M{"firstName": first, "lastName": last}).Decode(&user)
		if err == nil {
			return &user, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("failed to fetch user named %q: %w", fullName, err)
		}
	}

	filter := bson.M{"$or": []bson.M{
		{"firstName": fullName},
		{"lastName": fullName},
	}}
	if err := r.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user named %q not found", fullName)
		}
		return nil, fmt.Errorf("failed to fetch user named %q: %w", fullName, err)
	}
	return &user, nil
}

// GetAll returns every user document.
func (r *MongoUserRepo) GetAll() ([]models.User, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}
