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

// Pre- and post-condition repositories. GetByVehicleID returns the most
// recent document for the vehicle, since a vehicle accumulates one
// condition pair per rental cycle.

type vehiclePreConditionRepository struct {
	coll *mongo.Collection
}

func NewVehiclePreConditionRepository(coll *mongo.Collection) repository.VehiclePreConditionRepository {
	return &vehiclePreConditionRepository{coll: coll}
}

func (r *vehiclePreConditionRepository) Insert(ctx context.Context, c *domain.VehiclePreCondition) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *vehiclePreConditionRepository) GetByID(ctx context.Context, id string) (*domain.VehiclePreCondition, error) {
	var c domain.VehiclePreCondition
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *vehiclePreConditionRepository) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.VehiclePreCondition, error) {
	var c domain.VehiclePreCondition
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	err := r.coll.FindOne(ctx, bson.M{"vehicle_id": vehicleID}, opts).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *vehiclePreConditionRepository) Update(ctx context.Context, c *domain.VehiclePreCondition) error {
	c.UpdatedAt = time.Now()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrConflict
	}
	return nil
}

func (r *vehiclePreConditionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *vehiclePreConditionRepository) DeleteByVehicleID(ctx context.Context, vehicleID int32) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"vehicle_id": vehicleID})
	return err
}

func (r *vehiclePreConditionRepository) List(ctx context.Context) ([]domain.VehiclePreCondition, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var conditions []domain.VehiclePreCondition
	if err := cursor.All(ctx, &conditions); err != nil {
		return nil, err
	}
	return conditions, nil
}

type vehiclePostConditionRepository struct {
	coll *mongo.Collection
}

func NewVehiclePostConditionRepository(coll *mongo.Collection) repository.VehiclePostConditionRepository {
	return &vehiclePostConditionRepository{coll: coll}
}

func (r *vehiclePostConditionRepository) Insert(ctx context.Context, c *domain.VehiclePostCondition) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, c)
	return err
}

func (r *vehiclePostConditionRepository) GetByID(ctx context.Context, id string) (*domain.VehiclePostCondition, error) {
	var c domain.VehiclePostCondition
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *vehiclePostConditionRepository) GetByVehicleID(ctx context.Context, vehicleID int32) (*domain.VehiclePostCondition, error) {
	var c domain.VehiclePostCondition
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})
	err := r.coll.FindOne(ctx, bson.M{"vehicle_id": vehicleID}, opts).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *vehiclePostConditionRepository) Update(ctx context.Context, c *domain.VehiclePostCondition) error {
	c.UpdatedAt = time.Now()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrConflict
	}
	return nil
}

func (r *vehiclePostConditionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *vehiclePostConditionRepository) DeleteByVehicleID(ctx context.Context, vehicleID int32) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"vehicle_id": vehicleID})
	return err
}

func (r *vehiclePostConditionRepository) List(ctx context.Context) ([]domain.VehiclePostCondition, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var conditions []domain.VehiclePostCondition
	if err := cursor.All(ctx, &conditions); err != nil {
		return nil, err
	}
	return conditions, nil
}
