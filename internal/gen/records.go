package gen

import (
	"context"
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/estateseed/internal/ident"
)

// The fixed service catalog.
var serviceTypes = []string{
	"Routine inspection",
	"Equipment repair",
	"Cleaning service",
	"Security check",
	"Complaint handling",
	"Visitor registration",
	"Package receipt",
	"Emergency response",
}

// pickTarget chooses what a record points at: a building with the
// profile's probability, otherwise a room drawn from all generated
// rooms regardless of ownership. The tag travels with the identifier
// so callers never probe both entity spaces.
func (g *Generator) pickTarget(buildings []BuildingInfo, rooms []RoomStub) (Target, error) {
	useBuilding := g.sampler.Chance(g.profile.BuildingTargetProb)
	if useBuilding && len(buildings) > 0 {
		return Target{Kind: TargetBuilding, ID: buildings[g.sampler.Index(len(buildings))].ID}, nil
	}
	if len(rooms) > 0 {
		return Target{Kind: TargetRoom, ID: rooms[g.sampler.Index(len(rooms))].ID}, nil
	}
	if len(buildings) > 0 {
		return Target{Kind: TargetBuilding, ID: buildings[g.sampler.Index(len(buildings))].ID}, nil
	}
	return Target{}, fmt.Errorf("no buildings or rooms to target")
}

// GenerateServiceRecords emits count operational-activity rows,
// staff-attributed, with status weighted toward completed work.
func (g *Generator) GenerateServiceRecords(ctx context.Context, staffIDs []string, buildings []BuildingInfo, rooms []RoomStub, count int) (int, error) {
	if count > 0 && len(staffIDs) == 0 {
		return 0, fmt.Errorf("cannot generate service records without staff")
	}

	now := time.Now()
	batch := newBatchWriter(g.store, "service_records", recordColumns, g.profile.RowBatchSize)

	for i := 0; i < count; i++ {
		target, err := g.pickTarget(buildings, rooms)
		if err != nil {
			return 0, err
		}

		err = batch.Add(ctx,
			ident.NewID(),
			staffIDs[g.sampler.Index(len(staffIDs))],
			serviceTypes[g.sampler.Index(len(serviceTypes))],
			g.sampler.UnixBetween(now.AddDate(-2, 0, 0), now),
			g.faker.Description(),
			g.sampler.Weighted(g.profile.RecordStatusWeights),
			target.ID,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert service records: %w", err)
		}
	}

	if err := batch.Flush(ctx); err != nil {
		return 0, fmt.Errorf("failed to insert service records: %w", err)
	}
	return count, nil
}
