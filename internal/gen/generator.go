package gen

import (
	"github.com/Lumos-Labs-HQ/estateseed/internal/config"
	"github.com/Lumos-Labs-HQ/estateseed/internal/database"
)

// Generator threads the persistence handle, profile knobs and the
// run's randomness through every stage. Nothing is ambient: a test can
// build one against an in-memory Writer and a fixed seed.
type Generator struct {
	store   database.Writer
	profile *config.Profile
	sampler *Sampler
	faker   *Faker
}

func New(store database.Writer, profile *config.Profile, sampler *Sampler) *Generator {
	return &Generator{
		store:   store,
		profile: profile,
		sampler: sampler,
		faker:   NewFaker(sampler),
	}
}

// Stored column layouts, in the order rows are built.
var (
	roleColumns        = []string{"role_id", "role_name", "permission_level"}
	userColumns        = []string{"user_id", "username", "password_hash", "name", "phone_number", "email", "role_id", "status", "registration_date"}
	buildingColumns    = []string{"building_id", "building_name", "address", "floors_count"}
	roomColumns        = []string{"room_id", "building_id", "room_number", "floor", "area_sqm", "owner_id", "status"}
	parkingColumns     = []string{"parking_id", "parking_number", "owner_id", "status"}
	staffTypeColumns   = []string{"staff_type_id", "type_name", "description"}
	staffColumns       = []string{"staff_id", "user_id", "staff_type_id", "hire_date", "status"}
	serviceAreaColumns = []string{"area_id", "staff_id", "building_id", "assignment_date"}
	recordColumns      = []string{"record_id", "staff_id", "service_type", "service_date", "description", "status", "target_id"}
	feeColumns         = []string{"standard_id", "fee_type", "price_per_unit", "unit", "effective_date", "end_date"}
	txColumns          = []string{"transaction_id", "user_id", "room_id", "parking_id", "fee_type", "amount", "payment_date", "due_date", "payment_method", "status", "period_start", "period_end"}
)

// nullableID maps the empty identifier to a stored NULL.
func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}
