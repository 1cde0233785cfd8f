// File: database/repository/car/carMongoQueries.go
package carRepo

import (
	"fmt"
	"regexp"
	"time"

	"motorent/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SearchApproved retrieves approved cars matching a case-insensitive substring
// over brand/model, newest first, with skip/limit pagination. It returns the
// page of cars plus the total match count.
func (r *MongoCarRepo) SearchApproved(search string, skip, limit int64) ([]models.Car, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"status": models.CarStatusApproved}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"brand": pattern},
			bson.M{"model": pattern},
		}
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count approved cars: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search approved cars: %w", err)
	}
	defer cursor.Close(ctx)

	var cars []models.Car
	if err := cursor.All(ctx, &cars); err != nil {
		return nil, 0, fmt.Errorf("failed to decode cars: %w", err)
	}
	return cars, total, nil
}

// SetStatus updates the moderation status and availability flag, returning
// the updated car. Returns nil when no car matches the ID.
func (r *MongoCarRepo) SetStatus(id, status string, available bool) (*models.Car, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    status,
		"available": available,
		"updatedAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var car models.Car
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&car)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update status for car %s: %w", id, err)
	}
	return &car, nil
}

// MarkUnavailable clears the availability flag for a car.
func (r *MongoCarRepo) MarkUnavailable(id string) error {
	return r.setFields(id, bson.M{"available": false})
}

// MarkAvailableAt sets the availability flag and relocates the car to the
// given location.
func (r *MongoCarRepo) MarkAvailableAt(id, location string) error {
	return r.setFields(id, bson.M{"available": true, "location": location})
}

func (r *MongoCarRepo) setFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update car with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("car with id %s not found", id)
	}
	return nil
}

// CountAvailable counts approved cars currently marked available.
func (r *MongoCarRepo) CountAvailable() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{
		"status":    models.CarStatusApproved,
		"available": true,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count available cars: %w", err)
	}
	return count, nil
}
