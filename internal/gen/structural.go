package gen

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Lumos-Labs-HQ/estateseed/internal/ident"
)

// pickOwner is the ownership policy shared by rooms and parking
// spaces: with probability p, and only if the pool is non-empty, a
// uniformly chosen owner is attached. Status is derived from the
// outcome, never sampled on its own.
func (g *Generator) pickOwner(pool []string, p float64) (ownerID string, status int) {
	if len(pool) > 0 && g.sampler.Chance(p) {
		return pool[g.sampler.Index(len(pool))], AssetOccupied
	}
	return "", AssetVacant
}

// GenerateBuildings emits count buildings with a floor count sampled
// from the profile's range, returning the pool rooms and service areas
// draw from.
func (g *Generator) GenerateBuildings(ctx context.Context, count int) ([]BuildingInfo, error) {
	buildings := make([]BuildingInfo, 0, count)
	rows := make([][]any, 0, count)

	for i := 1; i <= count; i++ {
		info := BuildingInfo{
			ID:     ident.NewID(),
			Floors: g.sampler.IntBetween(g.profile.FloorsMin, g.profile.FloorsMax),
		}
		buildings = append(buildings, info)
		rows = append(rows, []any{
			info.ID,
			fmt.Sprintf("A%d", i),
			fmt.Sprintf("Parkview Estate, Building %d", i),
			info.Floors,
		})
	}

	if err := g.store.Insert(ctx, "buildings", buildingColumns, rows); err != nil {
		return nil, fmt.Errorf("failed to insert buildings: %w", err)
	}
	return buildings, nil
}

// GenerateOwners emits count owner accounts with synthetic contact
// fields, a registration instant within the past two years and a
// shared non-default password digest.
func (g *Generator) GenerateOwners(ctx context.Context, count int) ([]string, error) {
	now := time.Now()
	passwordHash := ident.HashPassword("password123")

	batch := newBatchWriter(g.store, "users", userColumns, g.profile.RowBatchSize)
	ids := make([]string, 0, count)

	for i := 0; i < count; i++ {
		id := ident.NewID()
		username := g.faker.Username()
		ids = append(ids, id)

		err := batch.Add(ctx,
			id,
			username,
			passwordHash,
			g.faker.Name(),
			g.faker.Phone(),
			g.faker.Email(username),
			RoleOwner,
			StatusActive,
			g.sampler.UnixBetween(now.AddDate(-2, 0, 0), now),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert owners: %w", err)
		}
	}

	if err := batch.Flush(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert owners: %w", err)
	}
	return ids, nil
}

// GenerateRooms emits a fixed number of units for every floor of every
// building. Room numbers encode floor and unit (floor 2, unit 1 →
// "201"); area is uniform in the profile's range, rounded to 2
// decimals. Returns a stub per generated room, owned or not, for the
// service record and billing stages.
func (g *Generator) GenerateRooms(ctx context.Context, buildings []BuildingInfo, owners []string) ([]RoomStub, error) {
	batch := newBatchWriter(g.store, "rooms", roomColumns, g.profile.RowBatchSize)
	var stubs []RoomStub

	for _, building := range buildings {
		for floor := 1; floor <= building.Floors; floor++ {
			for unit := 1; unit <= g.profile.UnitsPerFloor; unit++ {
				area := decimal.NewFromFloat(g.sampler.FloatBetween(g.profile.AreaMin, g.profile.AreaMax)).Round(2)
				ownerID, status := g.pickOwner(owners, g.profile.RoomOwnerProb)

				stub := RoomStub{ID: ident.NewID(), OwnerID: ownerID, Area: area}
				stubs = append(stubs, stub)

				err := batch.Add(ctx,
					stub.ID,
					building.ID,
					fmt.Sprintf("%d%02d", floor, unit),
					floor,
					area,
					nullableID(ownerID),
					status,
				)
				if err != nil {
					return nil, fmt.Errorf("failed to insert rooms: %w", err)
				}
			}
		}
	}

	if err := batch.Flush(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert rooms: %w", err)
	}
	return stubs, nil
}

// GenerateParkingSpaces emits count spaces numbered P001, P002, ...
func (g *Generator) GenerateParkingSpaces(ctx context.Context, owners []string, count int) ([]ParkingStub, error) {
	batch := newBatchWriter(g.store, "parking_spaces", parkingColumns, g.profile.RowBatchSize)
	stubs := make([]ParkingStub, 0, count)

	for i := 1; i <= count; i++ {
		ownerID, status := g.pickOwner(owners, g.profile.ParkingOwnerProb)
		stub := ParkingStub{ID: ident.NewID(), OwnerID: ownerID}
		stubs = append(stubs, stub)

		err := batch.Add(ctx,
			stub.ID,
			fmt.Sprintf("P%03d", i),
			nullableID(ownerID),
			status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert parking spaces: %w", err)
		}
	}

	if err := batch.Flush(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert parking spaces: %w", err)
	}
	return stubs, nil
}

// GenerateStaffTypes emits the fixed catalog of staff roles.
func (g *Generator) GenerateStaffTypes(ctx context.Context) ([]string, error) {
	catalog := []struct{ name, description string }{
		{"Concierge", "Day-to-day resident services"},
		{"Security", "Estate safety and patrols"},
		{"Cleaner", "Common area cleaning"},
		{"Repair", "Facility maintenance and repairs"},
		{"Groundskeeper", "Gardens and landscaping"},
	}

	ids := make([]string, 0, len(catalog))
	rows := make([][]any, 0, len(catalog))
	for _, entry := range catalog {
		id := ident.NewID()
		ids = append(ids, id)
		rows = append(rows, []any{id, entry.name, entry.description})
	}

	if err := g.store.Insert(ctx, "staff_types", staffTypeColumns, rows); err != nil {
		return nil, fmt.Errorf("failed to insert staff types: %w", err)
	}
	return ids, nil
}

// GenerateStaff emits count staff accounts, each paired with exactly
// one staff row referencing a uniformly drawn type. Hire instants fall
// between three years and six months ago.
func (g *Generator) GenerateStaff(ctx context.Context, typeIDs []string, count int) ([]string, error) {
	if count > 0 && len(typeIDs) == 0 {
		return nil, fmt.Errorf("cannot generate staff without staff types")
	}

	now := time.Now()
	passwordHash := ident.HashPassword("staffpass")

	userBatch := newBatchWriter(g.store, "users", userColumns, g.profile.StaffBatchSize)
	staffBatch := newBatchWriter(g.store, "staff", staffColumns, g.profile.StaffBatchSize)
	ids := make([]string, 0, count)

	for i := 0; i < count; i++ {
		userID := ident.NewID()
		username := fmt.Sprintf("staff%d", i+1)

		err := userBatch.Add(ctx,
			userID,
			username,
			passwordHash,
			g.faker.Name(),
			g.faker.Phone(),
			g.faker.Email(username),
			RoleStaff,
			StatusActive,
			g.sampler.UnixBetween(now.AddDate(-3, 0, 0), now.AddDate(-1, 0, 0)),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert staff users: %w", err)
		}

		staffID := ident.NewID()
		ids = append(ids, staffID)

		err = staffBatch.Add(ctx,
			staffID,
			userID,
			typeIDs[g.sampler.Index(len(typeIDs))],
			g.sampler.UnixBetween(now.AddDate(-3, 0, 0), now.AddDate(0, -6, 0)),
			StatusActive,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert staff records: %w", err)
		}
	}

	// Users flush first so staff rows never reference an unwritten user.
	if err := userBatch.Flush(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert staff users: %w", err)
	}
	if err := staffBatch.Flush(ctx); err != nil {
		return nil, fmt.Errorf("failed to insert staff records: %w", err)
	}
	return ids, nil
}

// GenerateServiceAreas assigns every staff member 1 or 2 distinct
// buildings, one row per (staff, building) pair.
func (g *Generator) GenerateServiceAreas(ctx context.Context, staffIDs []string, buildings []BuildingInfo) (int, error) {
	now := time.Now()
	batch := newBatchWriter(g.store, "service_areas", serviceAreaColumns, g.profile.RowBatchSize)
	total := 0

	for _, staffID := range staffIDs {
		take := g.sampler.IntBetween(1, 2)
		for _, idx := range g.sampler.DistinctIndexes(len(buildings), take) {
			err := batch.Add(ctx,
				ident.NewID(),
				staffID,
				buildings[idx].ID,
				g.sampler.UnixBetween(now.AddDate(-2, 0, 0), now.AddDate(0, -1, 0)),
			)
			if err != nil {
				return 0, fmt.Errorf("failed to insert service areas: %w", err)
			}
			total++
		}
	}

	if err := batch.Flush(ctx); err != nil {
		return 0, fmt.Errorf("failed to insert service areas: %w", err)
	}
	return total, nil
}
