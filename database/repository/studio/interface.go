// File: database/repository/studio/interface.go
package studioRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"pirouette/database"
	"pirouette/models"
)

type StudioRepository interface {
	Create(ctx context.Context, studio *models.Studio) error
	GetByID(ctx context.Context, id string) (*models.Studio, error)
	GetByOwner(ctx context.Context, ownerID string) ([]models.Studio, error)
	Update(ctx context.Context, studio *models.Studio) error
	Delete(ctx context.Context, id string) error
}

type mongoStudioRepo struct {
	coll *mongo.Collection
}

// NewMongoStudioRepo constructs a new MongoDB StudioRepository.
func NewMongoStudioRepo() StudioRepository {
	db := database.MongoClient.Database("pirouette")
	return &mongoStudioRepo{
		coll: db.Collection("studios"),
	}
}
