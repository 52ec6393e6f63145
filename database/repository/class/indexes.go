// File: database/repository/class/indexes.go
package classRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the classes collection.
func (r *mongoClassRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on class ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for studio_id + start_utc (primary query pattern: a
		// studio's classes in chronological order)
		{
			Keys:    bson.D{{Key: "studio_id", Value: 1}, {Key: "start_utc", Value: 1}},
			Options: options.Index().SetName("studio_start_idx"),
		},
		// Instructor timetable lookups
		{
			Keys:    bson.D{{Key: "instructor_id", Value: 1}, {Key: "start_utc", Value: 1}},
			Options: options.Index().SetName("instructor_start_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create class indexes: %w", err)
	}
	return nil
}
