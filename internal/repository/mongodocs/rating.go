package mongodocs

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type vehicleRatingRepository struct {
	coll *mongo.Collection
}

func NewVehicleRatingRepository(coll *mongo.Collection) repository.VehicleRatingRepository {
	return &vehicleRatingRepository{coll: coll}
}

func (r *vehicleRatingRepository) Insert(ctx context.Context, rating *domain.VehicleRating) error {
	if rating.ID == "" {
		rating.ID = uuid.NewString()
	}
	now := time.Now()
	rating.CreatedAt = now
	rating.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, rating)
	return err
}

func (r *vehicleRatingRepository) GetByID(ctx context.Context, id string) (*domain.VehicleRating, error) {
	var rating domain.VehicleRating
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&rating)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *vehicleRatingRepository) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.VehicleRating, error) {
	var rating domain.VehicleRating
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	err := r.coll.FindOne(ctx, bson.M{"vehicle_id": vehicleID}, opts).Decode(&rating)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *vehicleRatingRepository) ListByVehicleID(ctx context.Context, vehicleID int32) ([]domain.VehicleRating, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"vehicle_id": vehicleID}, opts)
	if err != nil {
		return nil, err
	}
	var ratings []domain.VehicleRating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *vehicleRatingRepository) Update(ctx context.Context, rating *domain.VehicleRating) error {
	rating.UpdatedAt = time.Now()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": rating.ID}, rating)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrConflict
	}
	return nil
}

func (r *vehicleRatingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *vehicleRatingRepository) DeleteByVehicleID(ctx context.Context, vehicleID int32) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"vehicle_id": vehicleID})
	return err
}

func (r *vehicleRatingRepository) List(ctx context.Context) ([]domain.VehicleRating, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var ratings []domain.VehicleRating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	return ratings, nil
}
