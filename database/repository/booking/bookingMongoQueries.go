// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"fmt"
	"time"

	"motorent/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CountOverlapping counts Paid bookings for a car whose [startDate, endDate)
// range intersects [start, end).
func (r *MongoBookingRepo) CountOverlapping(carID string, start, end time.Time) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{
		"carId":         carID,
		"paymentStatus": models.PaymentStatusPaid,
		"startDate":     bson.M{"$lt": end},
		"endDate":       bson.M{"$gt": start},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count overlapping bookings for car %s: %w", carID, err)
	}
	return count, nil
}

// FindExpired retrieves Paid bookings whose endDate has passed.
func (r *MongoBookingRepo) FindExpired(today time.Time) ([]models.Booking, error) {
	bookings, err := r.find(bson.M{
		"endDate":       bson.M{"$lt": today},
		"paymentStatus": models.PaymentStatusPaid,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find expired bookings: %w", err)
	}
	return bookings, nil
}

// CountActiveForCar counts Paid bookings for a car with endDate on or after
// today.
func (r *MongoBookingRepo) CountActiveForCar(carID string, today time.Time) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{
		"carId":         carID,
		"endDate":       bson.M{"$gte": today},
		"paymentStatus": models.PaymentStatusPaid,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count active bookings for car %s: %w", carID, err)
	}
	return count, nil
}

// CountActive counts Paid bookings with endDate on or after now.
func (r *MongoBookingRepo) CountActive(now time.Time) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{
		"endDate":       bson.M{"$gte": now},
		"paymentStatus": models.PaymentStatusPaid,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count active bookings: %w", err)
	}
	return count, nil
}

// TotalRevenue sums the total amount across all bookings.
func (r *MongoBookingRepo) TotalRevenue() (float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$totalAmount"}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode revenue aggregate: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
