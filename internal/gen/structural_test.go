package gen

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumos-Labs-HQ/estateseed/internal/config"
)

func testGenerator(seed int64, mutate func(*config.Profile)) (*Generator, *memWriter) {
	profile := config.DefaultProfile()
	if mutate != nil {
		mutate(profile)
	}
	store := newMemWriter()
	return New(store, profile, NewSampler(seed)), store
}

func TestGenerateBuildingsFloorRange(t *testing.T) {
	g, store := testGenerator(1, nil)

	buildings, err := g.GenerateBuildings(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, buildings, 10)
	require.Len(t, store.rows("buildings"), 10)

	for _, b := range buildings {
		assert.GreaterOrEqual(t, b.Floors, 18)
		assert.LessOrEqual(t, b.Floors, 33)
	}
}

func TestGenerateRoomsShapeWithoutOwners(t *testing.T) {
	// One building, two floors, no owner pool: sixteen vacant rooms and
	// nothing for billing to pick up.
	g, store := testGenerator(7, func(p *config.Profile) {
		p.FloorsMin = 2
		p.FloorsMax = 2
	})
	ctx := context.Background()

	buildings, err := g.GenerateBuildings(ctx, 1)
	require.NoError(t, err)

	rooms, err := g.GenerateRooms(ctx, buildings, nil)
	require.NoError(t, err)
	require.Len(t, rooms, 16)

	stored := store.rows("rooms")
	require.Len(t, stored, 16)

	wantNumbers := make(map[string]bool)
	for floor := 1; floor <= 2; floor++ {
		for unit := 1; unit <= 8; unit++ {
			wantNumbers[fmt.Sprintf("%d%02d", floor, unit)] = true
		}
	}

	for _, row := range stored {
		assert.Equal(t, nil, row["owner_id"])
		assert.Equal(t, AssetVacant, row["status"])
		assert.LessOrEqual(t, row["floor"].(int), 2)
		assert.True(t, wantNumbers[row["room_number"].(string)], "unexpected room number %v", row["room_number"])
		delete(wantNumbers, row["room_number"].(string))
	}
	assert.Empty(t, wantNumbers, "every floor/unit combination should appear exactly once")

	fees := FeeSchedule{FeeProperty: propertyRate(t), FeeParking: parkingRate(t)}
	months := []time.Time{time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)}
	count, err := g.GenerateTransactions(ctx, rooms, nil, months, fees)
	require.NoError(t, err)
	assert.Zero(t, count, "vacant rooms must not produce transactions")
	assert.Empty(t, store.rows("transactions"))
}

func TestRoomStatusMatchesOwnership(t *testing.T) {
	g, store := testGenerator(11, func(p *config.Profile) {
		p.FloorsMin = 5
		p.FloorsMax = 5
	})
	ctx := context.Background()

	buildings, err := g.GenerateBuildings(ctx, 2)
	require.NoError(t, err)
	owners, err := g.GenerateOwners(ctx, 30)
	require.NoError(t, err)

	_, err = g.GenerateRooms(ctx, buildings, owners)
	require.NoError(t, err)

	ownerSet := make(map[string]bool, len(owners))
	for _, id := range owners {
		ownerSet[id] = true
	}

	for _, row := range store.rows("rooms") {
		if row["owner_id"] == nil {
			assert.Equal(t, AssetVacant, row["status"])
		} else {
			assert.Equal(t, AssetOccupied, row["status"])
			assert.True(t, ownerSet[row["owner_id"].(string)], "room owner must come from the owner pool")
		}
	}
}

func TestOwnershipProportions(t *testing.T) {
	// 5 buildings x 25 floors x 8 units = 1000 rooms.
	g, store := testGenerator(42, func(p *config.Profile) {
		p.FloorsMin = 25
		p.FloorsMax = 25
	})
	ctx := context.Background()

	buildings, err := g.GenerateBuildings(ctx, 5)
	require.NoError(t, err)
	owners, err := g.GenerateOwners(ctx, 100)
	require.NoError(t, err)

	rooms, err := g.GenerateRooms(ctx, buildings, owners)
	require.NoError(t, err)
	require.Len(t, rooms, 1000)

	owned := 0
	for _, room := range rooms {
		if room.OwnerID != "" {
			owned++
		}
	}
	fraction := float64(owned) / float64(len(rooms))
	assert.InDelta(t, 0.75, fraction, 0.05, "room ownership fraction")

	parking, err := g.GenerateParkingSpaces(ctx, owners, 1000)
	require.NoError(t, err)

	assigned := 0
	for _, space := range parking {
		if space.OwnerID != "" {
			assigned++
		}
	}
	fraction = float64(assigned) / float64(len(parking))
	assert.InDelta(t, 0.60, fraction, 0.05, "parking ownership fraction")

	for _, row := range store.rows("parking_spaces") {
		if row["owner_id"] == nil {
			assert.Equal(t, AssetVacant, row["status"])
		} else {
			assert.Equal(t, AssetOccupied, row["status"])
		}
	}
}

func TestGenerateStaffReferentialIntegrity(t *testing.T) {
	g, store := testGenerator(3, nil)
	ctx := context.Background()

	types, err := g.GenerateStaffTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 5)

	staff, err := g.GenerateStaff(ctx, types, 20)
	require.NoError(t, err)
	require.Len(t, staff, 20)

	usersByID := make(map[string]map[string]any)
	for _, row := range store.rows("users") {
		usersByID[row["user_id"].(string)] = row
	}

	typeSet := make(map[string]bool)
	for _, id := range types {
		typeSet[id] = true
	}

	seenUsers := make(map[string]bool)
	now := time.Now()
	for _, row := range store.rows("staff") {
		user, ok := usersByID[row["user_id"].(string)]
		require.True(t, ok, "staff row must reference a generated user")
		assert.Equal(t, RoleStaff, user["role_id"])
		assert.True(t, typeSet[row["staff_type_id"].(string)])

		// 1:1 with users
		assert.False(t, seenUsers[row["user_id"].(string)], "one staff row per staff user")
		seenUsers[row["user_id"].(string)] = true

		hire := row["hire_date"].(int64)
		assert.GreaterOrEqual(t, hire, now.AddDate(-3, 0, 0).Unix())
		assert.LessOrEqual(t, hire, now.AddDate(0, -6, 0).Unix())
	}
}

func TestGenerateStaffWithoutTypesFails(t *testing.T) {
	g, _ := testGenerator(3, nil)
	_, err := g.GenerateStaff(context.Background(), nil, 5)
	require.Error(t, err)
}

func TestServiceAreasPerStaff(t *testing.T) {
	g, store := testGenerator(9, nil)
	ctx := context.Background()

	buildings, err := g.GenerateBuildings(ctx, 6)
	require.NoError(t, err)
	types, err := g.GenerateStaffTypes(ctx)
	require.NoError(t, err)
	staff, err := g.GenerateStaff(ctx, types, 15)
	require.NoError(t, err)

	total, err := g.GenerateServiceAreas(ctx, staff, buildings)
	require.NoError(t, err)
	assert.Len(t, store.rows("service_areas"), total)

	perStaff := make(map[string]map[string]bool)
	for _, row := range store.rows("service_areas") {
		staffID := row["staff_id"].(string)
		if perStaff[staffID] == nil {
			perStaff[staffID] = make(map[string]bool)
		}
		buildingID := row["building_id"].(string)
		assert.False(t, perStaff[staffID][buildingID], "buildings per staff must be distinct")
		perStaff[staffID][buildingID] = true
	}

	require.Len(t, perStaff, len(staff))
	for staffID, assigned := range perStaff {
		assert.GreaterOrEqual(t, len(assigned), 1, "staff %s", staffID)
		assert.LessOrEqual(t, len(assigned), 2, "staff %s", staffID)
	}
}

func TestRoomAreasWithinRange(t *testing.T) {
	g, _ := testGenerator(5, func(p *config.Profile) {
		p.FloorsMin = 3
		p.FloorsMax = 3
	})
	ctx := context.Background()

	buildings, err := g.GenerateBuildings(ctx, 2)
	require.NoError(t, err)
	rooms, err := g.GenerateRooms(ctx, buildings, nil)
	require.NoError(t, err)

	for _, room := range rooms {
		area, _ := room.Area.Float64()
		assert.GreaterOrEqual(t, area, 70.0)
		assert.LessOrEqual(t, area, 150.0)
		assert.True(t, room.Area.Equal(room.Area.Round(2)), "area must carry at most 2 decimals")
	}
}
