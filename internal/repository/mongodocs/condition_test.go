package mongodocs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

func TestVehiclePreConditionRepository_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Stamps id and timestamps", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewVehiclePreConditionRepository(mt.Coll)

		c := &domain.VehiclePreCondition{VehicleID: 3, ReservationID: 11}
		err := repo.Insert(context.Background(), c)
		assert.NoError(mt, err)
		assert.NotEmpty(mt, c.ID)
		assert.False(mt, c.CreatedAt.IsZero())
		assert.Equal(mt, c.CreatedAt, c.UpdatedAt)
	})

	mt.Run("Keeps a caller-supplied id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewVehiclePreConditionRepository(mt.Coll)

		c := &domain.VehiclePreCondition{ID: "pre-42", VehicleID: 3}
		err := repo.Insert(context.Background(), c)
		assert.NoError(mt, err)
		assert.Equal(mt, "pre-42", c.ID)
	})
}

func TestVehiclePreConditionRepository_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Advances updated_at on a matched replace", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		repo := NewVehiclePreConditionRepository(mt.Coll)

		stale := time.Now().Add(-time.Hour)
		c := &domain.VehiclePreCondition{ID: "pre-1", VehicleID: 3, UpdatedAt: stale}
		err := repo.Update(context.Background(), c)
		assert.NoError(mt, err)
		assert.True(mt, c.UpdatedAt.After(stale))
	})

	mt.Run("No matched document is a conflict", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))
		repo := NewVehiclePreConditionRepository(mt.Coll)

		c := &domain.VehiclePreCondition{ID: "pre-gone", VehicleID: 3}
		err := repo.Update(context.Background(), c)
		assert.ErrorIs(mt, err, repository.ErrConflict)
	})
}

func TestVehiclePreConditionRepository_Get(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("GetByVehicleID decodes the document", func(mt *mtest.T) {
		created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "vrms.vehicle_pre_conditions", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "pre-1"},
			{Key: "vehicle_id", Value: int32(3)},
			{Key: "reservation_id", Value: int32(11)},
			{Key: "damage", Value: bson.D{
				{Key: "has_scratches", Value: true},
				{Key: "scratch_description", Value: "door edge"},
			}},
			{Key: "created_at", Value: created},
			{Key: "updated_at", Value: created},
		}))
		repo := NewVehiclePreConditionRepository(mt.Coll)

		c, err := repo.GetByVehicleID(context.Background(), 3)
		assert.NoError(mt, err)
		assert.Equal(mt, "pre-1", c.ID)
		assert.Equal(mt, int32(11), c.ReservationID)
		assert.True(mt, c.Damage.HasScratches)
		assert.Equal(mt, "door edge", c.Damage.ScratchDescription)
	})

	mt.Run("GetByID on an absent id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "vrms.vehicle_pre_conditions", mtest.FirstBatch))
		repo := NewVehiclePreConditionRepository(mt.Coll)

		_, err := repo.GetByID(context.Background(), "missing")
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}

func TestVehiclePostConditionRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Insert stamps id and timestamps", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewVehiclePostConditionRepository(mt.Coll)

		c := &domain.VehiclePostCondition{VehicleID: 3, ReservationID: 11, TotalCostCents: 2500}
		err := repo.Insert(context.Background(), c)
		assert.NoError(mt, err)
		assert.NotEmpty(mt, c.ID)
		assert.Equal(mt, c.CreatedAt, c.UpdatedAt)
	})

	mt.Run("Update conflict on no match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))
		repo := NewVehiclePostConditionRepository(mt.Coll)

		c := &domain.VehiclePostCondition{ID: "post-gone", VehicleID: 3}
		err := repo.Update(context.Background(), c)
		assert.ErrorIs(mt, err, repository.ErrConflict)
	})

	mt.Run("GetByVehicleID on a vehicle with no documents", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "vrms.vehicle_post_conditions", mtest.FirstBatch))
		repo := NewVehiclePostConditionRepository(mt.Coll)

		_, err := repo.GetByVehicleID(context.Background(), 99)
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}
