package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile holds every knob of a generation run: entity counts, ranges,
// and the probability constants that govern optional relationships.
// Probabilities live here rather than inline in the generators so tests
// can pin them alongside a fixed seed.
type Profile struct {
	Buildings      int `yaml:"buildings"`
	Owners         int `yaml:"owners"`
	Staff          int `yaml:"staff"`           // 0 = derive from room count
	ParkingSpaces  int `yaml:"parking_spaces"`  // 0 = derive from room count
	ServiceRecords int `yaml:"service_records"`
	Months         int `yaml:"months"` // most recent N calendar months to bill

	FloorsMin     int     `yaml:"floors_min"`
	FloorsMax     int     `yaml:"floors_max"`
	UnitsPerFloor int     `yaml:"units_per_floor"`
	AreaMin       float64 `yaml:"area_min"`
	AreaMax       float64 `yaml:"area_max"`

	ParkingRatio  float64 `yaml:"parking_ratio"`   // derived parking spaces per room
	RoomsPerStaff int     `yaml:"rooms_per_staff"` // derived staffing density
	MinStaff      int     `yaml:"min_staff"`

	RoomOwnerProb      float64 `yaml:"room_owner_prob"`
	ParkingOwnerProb   float64 `yaml:"parking_owner_prob"`
	BuildingTargetProb float64 `yaml:"building_target_prob"`

	// Index order: pending/in-progress/done and unpaid/paid/overdue.
	RecordStatusWeights  []float64 `yaml:"record_status_weights"`
	PaymentStatusWeights []float64 `yaml:"payment_status_weights"`

	RowBatchSize   int `yaml:"row_batch_size"`
	StaffBatchSize int `yaml:"staff_batch_size"`

	Seed int64 `yaml:"seed"` // 0 = time-derived
}

func DefaultProfile() *Profile {
	return &Profile{
		Buildings:            6,
		Owners:               200,
		ServiceRecords:       500,
		Months:               6,
		FloorsMin:            18,
		FloorsMax:            33,
		UnitsPerFloor:        8,
		AreaMin:              70,
		AreaMax:              150,
		ParkingRatio:         0.6,
		RoomsPerStaff:        60,
		MinStaff:             15,
		RoomOwnerProb:        0.75,
		ParkingOwnerProb:     0.60,
		BuildingTargetProb:   0.30,
		RecordStatusWeights:  []float64{0.1, 0.2, 0.7},
		PaymentStatusWeights: []float64{0.1, 0.8, 0.1},
		RowBatchSize:         500,
		StaffBatchSize:       50,
	}
}

// LoadProfile reads a YAML profile over the defaults, so a file only
// needs to name the knobs it changes.
func LoadProfile(path string) (*Profile, error) {
	profile := DefaultProfile()
	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	return profile, nil
}

func (p *Profile) Validate() error {
	if p.Buildings < 0 || p.Owners < 0 || p.ServiceRecords < 0 || p.Months < 0 {
		return fmt.Errorf("counts cannot be negative")
	}
	if p.FloorsMin < 1 || p.FloorsMax < p.FloorsMin {
		return fmt.Errorf("floor range [%d,%d] is invalid", p.FloorsMin, p.FloorsMax)
	}
	if p.UnitsPerFloor < 1 {
		return fmt.Errorf("units_per_floor must be at least 1")
	}
	if p.AreaMin <= 0 || p.AreaMax < p.AreaMin {
		return fmt.Errorf("area range [%.2f,%.2f] is invalid", p.AreaMin, p.AreaMax)
	}
	for _, prob := range []float64{p.RoomOwnerProb, p.ParkingOwnerProb, p.BuildingTargetProb} {
		if prob < 0 || prob > 1 {
			return fmt.Errorf("probability %.2f is outside [0,1]", prob)
		}
	}
	if len(p.RecordStatusWeights) != 3 {
		return fmt.Errorf("record_status_weights needs exactly 3 entries, got %d", len(p.RecordStatusWeights))
	}
	if len(p.PaymentStatusWeights) != 3 {
		return fmt.Errorf("payment_status_weights needs exactly 3 entries, got %d", len(p.PaymentStatusWeights))
	}
	if p.RowBatchSize < 1 || p.StaffBatchSize < 1 {
		return fmt.Errorf("batch sizes must be at least 1")
	}
	return nil
}

// StaffCount resolves the staff head count for a generated room total.
func (p *Profile) StaffCount(rooms int) int {
	if p.Staff > 0 {
		return p.Staff
	}
	derived := 0
	if p.RoomsPerStaff > 0 {
		derived = rooms / p.RoomsPerStaff
	}
	if derived < p.MinStaff {
		return p.MinStaff
	}
	return derived
}

// ParkingCount resolves the parking space total for a generated room total.
func (p *Profile) ParkingCount(rooms int) int {
	if p.ParkingSpaces > 0 {
		return p.ParkingSpaces
	}
	return int(float64(rooms) * p.ParkingRatio)
}
