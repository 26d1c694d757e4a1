package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

type fleetMocks struct {
	vehicle    *MockVehicleRepo
	car        *MockCarRepo
	bus        *MockBusRepo
	truck      *MockTruckRepo
	motorcycle *MockMotorcycleRepo
	history    *MockHistoryRepo
	pre        *MockPreConditionRepo
	post       *MockPostConditionRepo
	rating     *MockRatingRepo
}

func newFleetServiceForTest(allowHardDelete bool) (FleetService, *fleetMocks) {
	m := &fleetMocks{
		vehicle:    new(MockVehicleRepo),
		car:        new(MockCarRepo),
		bus:        new(MockBusRepo),
		truck:      new(MockTruckRepo),
		motorcycle: new(MockMotorcycleRepo),
		history:    new(MockHistoryRepo),
		pre:        new(MockPreConditionRepo),
		post:       new(MockPostConditionRepo),
		rating:     new(MockRatingRepo),
	}
	svc := NewFleetService(m.vehicle, m.car, m.bus, m.truck, m.motorcycle, m.history, m.pre, m.post, m.rating, allowHardDelete)
	return svc, m
}

func TestFleetService_AddCar(t *testing.T) {
	svc, m := newFleetServiceForTest(false)
	ctx := context.Background()

	m.vehicle.On("Create", ctx, mock.AnythingOfType("*domain.Vehicle")).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Vehicle).ID = 7
	}).Return(nil)
	m.car.On("Create", ctx, mock.AnythingOfType("*domain.Car")).Return(nil)

	v := &domain.Vehicle{Make: "Toyota", Model: "Corolla"}
	c := &domain.Car{Seats: 5, Doors: 4}

	err := svc.AddCar(ctx, v, c)
	assert.NoError(t, err)
	assert.Equal(t, domain.VehicleKindCar, v.Kind)
	assert.Equal(t, int32(7), c.VehicleID)
	m.car.AssertExpectations(t)
}

func TestFleetService_PerKindListings(t *testing.T) {
	svc, m := newFleetServiceForTest(false)
	ctx := context.Background()

	m.car.On("ListAvailable", ctx).Return([]domain.Car{{ID: 1, VehicleID: 3}}, nil)
	m.truck.On("ListByFuelType", ctx, domain.FuelTypeDiesel).Return([]domain.Truck{{ID: 2, VehicleID: 8}}, nil)
	m.bus.On("List", ctx).Return([]domain.Bus{}, nil)

	cars, err := svc.ListAvailableCars(ctx)
	assert.NoError(t, err)
	assert.Len(t, cars, 1)

	trucks, err := svc.ListTrucksByFuelType(ctx, domain.FuelTypeDiesel)
	assert.NoError(t, err)
	assert.Equal(t, int32(8), trucks[0].VehicleID)

	buses, err := svc.ListBuses(ctx)
	assert.NoError(t, err)
	assert.Empty(t, buses)

	m.car.AssertExpectations(t)
	m.truck.AssertExpectations(t)
	m.bus.AssertExpectations(t)
}

func TestFleetService_DeleteVehicle(t *testing.T) {
	ctx := context.Background()

	t.Run("Car deletion blocked when hard delete is off", func(t *testing.T) {
		svc, m := newFleetServiceForTest(false)
		m.vehicle.On("GetByID", ctx, int32(1)).Return(&domain.Vehicle{ID: 1, Kind: domain.VehicleKindCar}, nil)

		err := svc.DeleteVehicle(ctx, 1)
		assert.ErrorIs(t, err, ErrHardDeleteDisabled)
		m.vehicle.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Car deletion allowed when hard delete is on", func(t *testing.T) {
		svc, m := newFleetServiceForTest(true)
		m.vehicle.On("GetByID", ctx, int32(1)).Return(&domain.Vehicle{ID: 1, Kind: domain.VehicleKindCar}, nil)
		m.vehicle.On("Delete", ctx, int32(1)).Return(nil)
		m.history.On("DeleteByVehicleID", ctx, int32(1)).Return(nil)
		m.pre.On("DeleteByVehicleID", ctx, int32(1)).Return(nil)
		m.post.On("DeleteByVehicleID", ctx, int32(1)).Return(nil)
		m.rating.On("DeleteByVehicleID", ctx, int32(1)).Return(nil)

		assert.NoError(t, svc.DeleteVehicle(ctx, 1))
		m.vehicle.AssertExpectations(t)
		m.rating.AssertExpectations(t)
	})

	t.Run("Bus deletion ignores the toggle", func(t *testing.T) {
		svc, m := newFleetServiceForTest(false)
		m.vehicle.On("GetByID", ctx, int32(2)).Return(&domain.Vehicle{ID: 2, Kind: domain.VehicleKindBus}, nil)
		m.vehicle.On("Delete", ctx, int32(2)).Return(nil)
		m.history.On("DeleteByVehicleID", ctx, int32(2)).Return(nil)
		m.pre.On("DeleteByVehicleID", ctx, int32(2)).Return(nil)
		m.post.On("DeleteByVehicleID", ctx, int32(2)).Return(nil)
		m.rating.On("DeleteByVehicleID", ctx, int32(2)).Return(nil)

		assert.NoError(t, svc.DeleteVehicle(ctx, 2))
	})

	t.Run("Missing vehicle is a no-op", func(t *testing.T) {
		svc, m := newFleetServiceForTest(true)
		m.vehicle.On("GetByID", ctx, int32(99)).Return(nil, repository.ErrNotFound)

		assert.NoError(t, svc.DeleteVehicle(ctx, 99))
		m.vehicle.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Document cleanup failure is reported after relational delete", func(t *testing.T) {
		svc, m := newFleetServiceForTest(false)
		m.vehicle.On("GetByID", ctx, int32(3)).Return(&domain.Vehicle{ID: 3, Kind: domain.VehicleKindTruck}, nil)
		m.vehicle.On("Delete", ctx, int32(3)).Return(nil)
		m.history.On("DeleteByVehicleID", ctx, int32(3)).Return(assert.AnError)
		m.pre.On("DeleteByVehicleID", ctx, int32(3)).Return(nil)
		m.post.On("DeleteByVehicleID", ctx, int32(3)).Return(nil)
		m.rating.On("DeleteByVehicleID", ctx, int32(3)).Return(nil)

		err := svc.DeleteVehicle(ctx, 3)
		assert.Error(t, err)
		// Cleanup continued through the remaining collections.
		m.rating.AssertCalled(t, "DeleteByVehicleID", ctx, int32(3))
	})
}

func TestFleetService_GetVehicle(t *testing.T) {
	svc, m := newFleetServiceForTest(false)
	ctx := context.Background()

	m.vehicle.On("GetByID", ctx, int32(1)).Return(&domain.Vehicle{ID: 1}, nil)
	m.vehicle.On("ListPhotos", ctx, int32(1)).Return([]domain.Photo{{ID: 12, VehicleID: 1}}, nil)

	v, err := svc.GetVehicle(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, v.Photos, 1)
}

func TestFleetService_AddPhoto(t *testing.T) {
	ctx := context.Background()

	t.Run("Photo requires an existing vehicle", func(t *testing.T) {
		svc, m := newFleetServiceForTest(false)
		m.vehicle.On("GetByID", ctx, int32(99)).Return(nil, repository.ErrNotFound)

		err := svc.AddPhoto(ctx, &domain.Photo{VehicleID: 99})
		assert.ErrorIs(t, err, repository.ErrNotFound)
		m.vehicle.AssertNotCalled(t, "AddPhoto", mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		svc, m := newFleetServiceForTest(false)
		m.vehicle.On("GetByID", ctx, int32(1)).Return(&domain.Vehicle{ID: 1}, nil)
		m.vehicle.On("AddPhoto", ctx, mock.AnythingOfType("*domain.Photo")).Return(nil)

		assert.NoError(t, svc.AddPhoto(ctx, &domain.Photo{VehicleID: 1, URL: "http://example.com/a.jpg"}))
	})
}
