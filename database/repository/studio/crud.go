// File: database/repository/studio/crud.go
package studioRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pirouette/models"
)

func (r *mongoStudioRepo) Create(ctx context.Context, studio *models.Studio) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if studio.CreatedAt.IsZero() {
		studio.CreatedAt = time.Now().UTC()
	}
	if _, err := r.coll.InsertOne(ctx, studio); err != nil {
		return fmt.Errorf("failed to insert studio %s: %w", studio.ID, err)
	}
	return nil
}

func (r *mongoStudioRepo) GetByID(ctx context.Context, id string) (*models.Studio, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var studio models.Studio
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&studio); err != nil {
		return nil, err
	}
	return &studio, nil
}

func (r *mongoStudioRepo) GetByOwner(ctx context.Context, ownerID string) ([]models.Studio, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var studios []models.Studio
	if err := cursor.All(ctx, &studios); err != nil {
		return nil, err
	}
	return studios, nil
}

func (r *mongoStudioRepo) Update(ctx context.Context, studio *models.Studio) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	studio.UpdatedAt = time.Now().UTC()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": studio.ID}, studio)
	if err != nil {
		return fmt.Errorf("failed to update studio %s: %w", studio.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoStudioRepo) Delete(ctx context.Context, id string) error {
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
