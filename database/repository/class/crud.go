// File: database/repository/class/crud.go
package classRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pirouette/models"
)

func (r *mongoClassRepo) Create(ctx context.Context, class *models.Class) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if class.CreatedAt.IsZero() {
		class.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, class); err != nil {
		return fmt.Errorf("failed to insert class %s: %w", class.ID, err)
	}
	return nil
}

// CreateMany inserts the whole batch with ordered=false so one bad document
// does not abort the rest. Partial failures surface as mongo.BulkWriteException
// and are translated into per-index BulkFailure entries; the succeeded inserts
// are kept (no cross-record atomicity is promised).
func (r *mongoClassRepo) CreateMany(ctx context.Context, classes []models.Class) (int, []BulkFailure, error) {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	now := time.Now().UTC()
	docs := make([]interface{}, len(classes))
	for i, class := range classes {
		if class.CreatedAt.IsZero() {
			class.CreatedAt = now
		}
		docs[i] = class
	}

	res, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))

	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		failures := make([]BulkFailure, 0, len(bwe.WriteErrors))
		for _, we := range bwe.WriteErrors {
			failures = append(failures, BulkFailure{Index: we.Index, Message: we.Message})
		}
		inserted := len(classes) - len(failures)
		return inserted, failures, nil
	}
	if err != nil {
		return 0, nil, fmt.Errorf("bulk insert of %d classes failed: %w", len(classes), err)
	}
	return len(res.InsertedIDs), nil, nil
}

func (r *mongoClassRepo) GetByID(ctx context.Context, id string) (*models.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var class models.Class
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&class); err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *mongoClassRepo) GetByStudio(ctx context.Context, studioID string) ([]models.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_utc", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"studio_id": studioID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var classes []models.Class
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *mongoClassRepo) Update(ctx context.Context, class *models.Class) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	class.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": class.ID}, class)
	if err != nil {
		return fmt.Errorf("failed to update class %s: %w", class.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoClassRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
