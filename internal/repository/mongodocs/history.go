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

type vehicleHistoryRepository struct {
	coll *mongo.Collection
}

func NewVehicleHistoryRepository(coll *mongo.Collection) repository.VehicleHistoryRepository {
	return &vehicleHistoryRepository{coll: coll}
}

func (r *vehicleHistoryRepository) Insert(ctx context.Context, h *domain.VehicleHistory) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	now := time.Now()
	h.CreatedAt = now
	h.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, h)
	return err
}

func (r *vehicleHistoryRepository) GetByID(ctx context.Context, id string) (*domain.VehicleHistory, error) {
	var h domain.VehicleHistory
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *vehicleHistoryRepository) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.VehicleHistory, error) {
	var h domain.VehicleHistory
	err := r.coll.FindOne(ctx, bson.M{"vehicle_id": vehicleID}).Decode(&h)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *vehicleHistoryRepository) ListByVehicleID(ctx context.Context, vehicleID int32) ([]domain.VehicleHistory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"vehicle_id": vehicleID}, opts)
	if err != nil {
		return nil, err
	}
	var entries []domain.VehicleHistory
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Update replaces the whole document and stamps UpdatedAt here, never in
// the caller, so readers can always detect staleness.
func (r *vehicleHistoryRepository) Update(ctx context.Context, h *domain.VehicleHistory) error {
	h.UpdatedAt = time.Now()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": h.ID}, h)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrConflict
	}
	return nil
}

func (r *vehicleHistoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *vehicleHistoryRepository) DeleteByVehicleID(ctx context.Context, vehicleID int32) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"vehicle_id": vehicleID})
	return err
}

// List scans the whole collection. Acceptable only because volumes are
// small.
func (r *vehicleHistoryRepository) List(ctx context.Context) ([]domain.VehicleHistory, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var entries []domain.VehicleHistory
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
