// File: database/repository/class/interface.go
package classRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"pirouette/database"
	"pirouette/models"
)

// BulkFailure identifies one draft that the persistence layer rejected during
// a bulk create, by its position in the submitted batch.
type BulkFailure struct {
	Index   int
	Message string
}

type ClassRepository interface {
	Create(ctx context.Context, class *models.Class) error
	// CreateMany inserts the batch unordered and reports per-index failures
	// alongside the number of records actually inserted. A non-nil error means
	// the whole call failed and nothing can be said about individual drafts.
	CreateMany(ctx context.Context, classes []models.Class) (int, []BulkFailure, error)
	GetByID(ctx context.Context, id string) (*models.Class, error)
	GetByStudio(ctx context.Context, studioID string) ([]models.Class, error)
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoClassRepo struct {
	coll *mongo.Collection
}

// NewMongoClassRepo constructs a new MongoDB ClassRepository.
func NewMongoClassRepo() ClassRepository {
	db := database.MongoClient.Database("pirouette")
	return &mongoClassRepo{
		coll: db.Collection("classes"),
	}
}
