// File: database/repository/provider/provider_mongo.go
package providerRepo

import (
	"context"
	"time"

	"homeserve/database"
	"homeserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProviderRepository defines persistence operations for providers.
type ProviderRepository interface {
	Create(provider *models.Provider) error
	Update(provider *models.Provider) error
	Delete(id string) error
	GetByID(id string) (*models.Provider, error)
	GetByEmail(email string) (*models.Provider, error)
	ListByCategory(category string) ([]models.Provider, error)
	ListUnverified() ([]models.Provider, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
}

// MongoProviderRepo is the MongoDB implementation of ProviderRepository.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

func NewMongoProviderRepo() *MongoProviderRepo {
	return &MongoProviderRepo{coll: database.Collection("providers")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
