package domain

import "time"

type VehicleKind string

const (
	VehicleKindCar        VehicleKind = "CAR"
	VehicleKindBus        VehicleKind = "BUS"
	VehicleKindTruck      VehicleKind = "TRUCK"
	VehicleKindMotorcycle VehicleKind = "MOTORCYCLE"
)

type FuelType string

const (
	FuelTypePetrol   FuelType = "PETROL"
	FuelTypeDiesel   FuelType = "DIESEL"
	FuelTypeHybrid   FuelType = "HYBRID"
	FuelTypeElectric FuelType = "ELECTRIC"
)

type Transmission string

const (
	TransmissionManual    Transmission = "MANUAL"
	TransmissionAutomatic Transmission = "AUTOMATIC"
)

// Vehicle is the base record shared by all fleet vehicle kinds. Subtype
// rows (Car, Bus, Truck, Motorcycle) reference it by VehicleID.
type Vehicle struct {
	ID              int32       `json:"id"`
	Kind            VehicleKind `json:"kind"`
	Make            string      `json:"make"`
	Model           string      `json:"model"`
	Year            int32       `json:"year"`
	LicensePlate    string      `json:"license_plate"`
	FuelType        FuelType    `json:"fuel_type"`
	IsAvailable     bool        `json:"is_available"`
	DailyPriceCents int32       `json:"daily_price_cents"`
	PrepayFeeCents  int32       `json:"prepay_fee_cents"`
	Photos          []Photo     `json:"photos,omitempty"` // Populated when needed
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Photo is owned by its vehicle and is removed with it.
type Photo struct {
	ID        int32  `json:"id"`
	VehicleID int32  `json:"vehicle_id"`
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

type Car struct {
	ID              int32        `json:"id"`
	VehicleID       int32        `json:"vehicle_id"`
	Seats           int32        `json:"seats"`
	Doors           int32        `json:"doors"`
	Transmission    Transmission `json:"transmission"`
	TrunkLiters     int32        `json:"trunk_liters"`
	HasAirCondition bool         `json:"has_air_condition"`
}

type Bus struct {
	ID             int32 `json:"id"`
	VehicleID      int32 `json:"vehicle_id"`
	SeatedPlaces   int32 `json:"seated_places"`
	StandingPlaces int32 `json:"standing_places"`
	HasLuggageBay  bool  `json:"has_luggage_bay"`
}

type Truck struct {
	ID              int32 `json:"id"`
	VehicleID       int32 `json:"vehicle_id"`
	PayloadKg       int32 `json:"payload_kg"`
	AxleCount       int32 `json:"axle_count"`
	HasTrailerHitch bool  `json:"has_trailer_hitch"`
}

type Motorcycle struct {
	ID         int32 `json:"id"`
	VehicleID  int32 `json:"vehicle_id"`
	EngineCC   int32 `json:"engine_cc"`
	HasSidecar bool  `json:"has_sidecar"`
}
