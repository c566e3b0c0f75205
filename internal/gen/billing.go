package gen

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Lumos-Labs-HQ/estateseed/internal/ident"
	"github.com/Lumos-Labs-HQ/estateseed/internal/timeutil"
)

// GenerateTransactions emits one transaction per owned asset per
// requested month. The caller supplies the month list; the engine
// derives nothing from "now". Vacant assets produce no rows.
//
// The fee schedule carries two parking tiers but every space is billed
// the first (surface) rate, matching the data this generator has
// always produced; per-space tier assignment would need a tier column
// on parking_spaces first.
func (g *Generator) GenerateTransactions(ctx context.Context, rooms []RoomStub, parking []ParkingStub, months []time.Time, fees FeeSchedule) (int, error) {
	propertyPrice, ok := fees[FeeProperty]
	if !ok {
		return 0, fmt.Errorf("no fee standard for property fees")
	}
	parkingPrice, ok := fees[FeeParking]
	if !ok {
		return 0, fmt.Errorf("no fee standard for parking fees")
	}

	batch := newBatchWriter(g.store, "transactions", txColumns, g.profile.RowBatchSize)
	total := 0

	for _, room := range rooms {
		if room.OwnerID == "" {
			continue
		}
		amount := room.Area.Mul(propertyPrice).Round(2)
		for _, month := range months {
			if err := g.addTransaction(ctx, batch, room.OwnerID, room.ID, "", FeeProperty, amount, month); err != nil {
				return 0, err
			}
			total++
		}
	}

	for _, space := range parking {
		if space.OwnerID == "" {
			continue
		}
		for _, month := range months {
			if err := g.addTransaction(ctx, batch, space.OwnerID, "", space.ID, FeeParking, parkingPrice, month); err != nil {
				return 0, err
			}
			total++
		}
	}

	if err := batch.Flush(ctx); err != nil {
		return 0, fmt.Errorf("failed to insert transactions: %w", err)
	}
	return total, nil
}

func (g *Generator) addTransaction(ctx context.Context, batch *batchWriter, ownerID, roomID, parkingID string, feeType int, amount decimal.Decimal, month time.Time) error {
	periodStart, periodEnd := timeutil.MonthBounds(month)
	dueDate := periodEnd

	status := g.sampler.Weighted(g.profile.PaymentStatusWeights)

	paymentDate := NoTimestamp
	paymentMethod := MethodCash
	if status == PaymentPaid {
		paymentDate = g.sampler.UnixBetween(timeutil.FromUnix(periodStart), timeutil.FromUnix(dueDate))
		paymentMethod = g.sampler.Index(4)
	}

	err := batch.Add(ctx,
		ident.NewID(),
		ownerID,
		nullableID(roomID),
		nullableID(parkingID),
		feeType,
		amount,
		paymentDate,
		dueDate,
		paymentMethod,
		status,
		periodStart,
		periodEnd,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transactions: %w", err)
	}
	return nil
}
