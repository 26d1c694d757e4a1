// Package mongodocs implements the document-store repositories over
// MongoDB collections. Documents are keyed by a UUID _id plus the
// vehicle_id natural key; this layer permits duplicate documents per
// vehicle and leaves dedup policy to callers. Nothing here shares a
// transaction with the relational store.
package mongodocs

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"vrms-backend/internal/repository"
)

// CollectionNames configures the four collections the store uses.
type CollectionNames struct {
	History       string
	PreCondition  string
	PostCondition string
	Rating        string
}

// DefaultCollectionNames matches the names the front-end was built against.
func DefaultCollectionNames() CollectionNames {
	return CollectionNames{
		History:       "VehicleHistoryCollection",
		PreCondition:  "VehiclePreConditionCollection",
		PostCondition: "VehiclePostConditionCollection",
		Rating:        "VehicleRatingCollection",
	}
}

// DocumentStore bundles every document repository behind one handle.
type DocumentStore struct {
	client *mongo.Client
	repository.VehicleHistoryRepository
	repository.VehiclePreConditionRepository
	repository.VehiclePostConditionRepository
	repository.VehicleRatingRepository
}

func NewDocumentStore(client *mongo.Client, database string, names CollectionNames) *DocumentStore {
	db := client.Database(database)
	return &DocumentStore{
		client:                         client,
		VehicleHistoryRepository:       NewVehicleHistoryRepository(db.Collection(names.History)),
		VehiclePreConditionRepository:  NewVehiclePreConditionRepository(db.Collection(names.PreCondition)),
		VehiclePostConditionRepository: NewVehiclePostConditionRepository(db.Collection(names.PostCondition)),
		VehicleRatingRepository:        NewVehicleRatingRepository(db.Collection(names.Rating)),
	}
}

// Connect dials the document store and verifies the connection.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}
