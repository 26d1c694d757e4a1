package domain

import "time"

// Document-store records. These live in Mongo collections keyed loosely by
// VehicleID; the string _id is a UUID assigned on insert. They never share
// a transaction with the relational entities above — callers that write to
// both stores perform two independent commits.

// VehicleHistory is a free-form maintenance/usage log entry.
type VehicleHistory struct {
	ID        string    `bson:"_id" json:"id"`
	VehicleID int32     `bson:"vehicle_id" json:"vehicle_id"`
	Note      string    `bson:"note" json:"note"`
	Odometer  int32     `bson:"odometer" json:"odometer"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// DamageReport holds the shared damage flags of pre/post condition records.
// Each flag carries an optional free-text description.
type DamageReport struct {
	HasScratches       bool   `bson:"has_scratches" json:"has_scratches"`
	ScratchDescription string `bson:"scratch_description,omitempty" json:"scratch_description,omitempty"`
	HasDents           bool   `bson:"has_dents" json:"has_dents"`
	DentDescription    string `bson:"dent_description,omitempty" json:"dent_description,omitempty"`
	HasRust            bool   `bson:"has_rust" json:"has_rust"`
	RustDescription    string `bson:"rust_description,omitempty" json:"rust_description,omitempty"`
}

// VehiclePreCondition is the damage baseline recorded at pickup.
type VehiclePreCondition struct {
	ID            string       `bson:"_id" json:"id"`
	VehicleID     int32        `bson:"vehicle_id" json:"vehicle_id"`
	ReservationID int32        `bson:"reservation_id" json:"reservation_id"`
	Damage        DamageReport `bson:"damage" json:"damage"`
	CreatedAt     time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time    `bson:"updated_at" json:"updated_at"`
}

// VehiclePostCondition is recorded at return. TotalCostCents covers only
// damage that is new relative to the pre-condition baseline.
type VehiclePostCondition struct {
	ID             string       `bson:"_id" json:"id"`
	VehicleID      int32        `bson:"vehicle_id" json:"vehicle_id"`
	ReservationID  int32        `bson:"reservation_id" json:"reservation_id"`
	Damage         DamageReport `bson:"damage" json:"damage"`
	TotalCostCents int32        `bson:"total_cost_cents" json:"total_cost_cents"`
	CreatedAt      time.Time    `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time    `bson:"updated_at" json:"updated_at"`
}

// VehicleRating is a customer's star rating for a vehicle.
type VehicleRating struct {
	ID         string    `bson:"_id" json:"id"`
	VehicleID  int32     `bson:"vehicle_id" json:"vehicle_id"`
	CustomerID int32     `bson:"customer_id" json:"customer_id"`
	Stars      int32     `bson:"stars" json:"stars"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
