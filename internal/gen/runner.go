package gen

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/Lumos-Labs-HQ/estateseed/internal/config"
	"github.com/Lumos-Labs-HQ/estateseed/internal/database"
)

// Result reports how many rows each stage produced.
type Result struct {
	Buildings      int
	Owners         int
	Rooms          int
	ParkingSpaces  int
	StaffTypes     int
	Staff          int
	ServiceAreas   int
	ServiceRecords int
	Transactions   int
}

// GenerateAll runs every stage in dependency order: reference data,
// the structural skeleton, service records, billing. It does not
// commit; that is the caller's single terminal step.
func (g *Generator) GenerateAll(ctx context.Context, months []time.Time) (*Result, error) {
	result := &Result{}

	color.Cyan("🌱 Seeding reference data...")
	fees, err := g.SeedReferenceData(ctx)
	if err != nil {
		return nil, err
	}

	buildings, err := g.GenerateBuildings(ctx, g.profile.Buildings)
	if err != nil {
		return nil, err
	}
	result.Buildings = len(buildings)
	color.Green("  🏢 %d buildings", result.Buildings)

	owners, err := g.GenerateOwners(ctx, g.profile.Owners)
	if err != nil {
		return nil, err
	}
	result.Owners = len(owners)
	color.Green("  👤 %d owner accounts", result.Owners)

	rooms, err := g.GenerateRooms(ctx, buildings, owners)
	if err != nil {
		return nil, err
	}
	result.Rooms = len(rooms)
	color.Green("  🚪 %d rooms", result.Rooms)

	parking, err := g.GenerateParkingSpaces(ctx, owners, g.profile.ParkingCount(len(rooms)))
	if err != nil {
		return nil, err
	}
	result.ParkingSpaces = len(parking)
	color.Green("  🚗 %d parking spaces", result.ParkingSpaces)

	staffTypes, err := g.GenerateStaffTypes(ctx)
	if err != nil {
		return nil, err
	}
	result.StaffTypes = len(staffTypes)

	staff, err := g.GenerateStaff(ctx, staffTypes, g.profile.StaffCount(len(rooms)))
	if err != nil {
		return nil, err
	}
	result.Staff = len(staff)
	color.Green("  👷 %d staff across %d types", result.Staff, result.StaffTypes)

	result.ServiceAreas, err = g.GenerateServiceAreas(ctx, staff, buildings)
	if err != nil {
		return nil, err
	}

	result.ServiceRecords, err = g.GenerateServiceRecords(ctx, staff, buildings, rooms, g.profile.ServiceRecords)
	if err != nil {
		return nil, err
	}
	color.Green("  🛠  %d service records across %d areas", result.ServiceRecords, result.ServiceAreas)

	result.Transactions, err = g.GenerateTransactions(ctx, rooms, parking, months, fees)
	if err != nil {
		return nil, err
	}
	color.Green("  💳 %d transactions over %d months", result.Transactions, len(months))

	return result, nil
}

// Run is the orchestrator: it opens the run's transaction, drives
// GenerateAll, and issues the one terminal commit. Any error skips the
// commit, so the store's Close leaves the target untouched.
func Run(ctx context.Context, store *database.Store, profile *config.Profile, months []time.Time) (*Result, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	if err := store.Begin(ctx); err != nil {
		return nil, err
	}

	generator := New(store, profile, NewSampler(profile.Seed))
	result, err := generator.GenerateAll(ctx, months)
	if err != nil {
		return nil, err
	}

	if err := store.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}
