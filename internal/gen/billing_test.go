package gen

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumos-Labs-HQ/estateseed/internal/config"
)

func propertyRate(t *testing.T) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString("3.5")
}

func parkingRate(t *testing.T) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString("300")
}

func testFees(t *testing.T) FeeSchedule {
	t.Helper()
	return FeeSchedule{FeeProperty: propertyRate(t), FeeParking: parkingRate(t)}
}

func TestPropertyFeeAmount(t *testing.T) {
	// Rate 3.5, area 100.0, one month: exactly one transaction of
	// 350.00 spanning January 2024.
	g, store := testGenerator(1, nil)

	rooms := []RoomStub{{ID: "room-1", OwnerID: "owner-1", Area: decimal.RequireFromString("100.0")}}
	months := []time.Time{time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)}

	count, err := g.GenerateTransactions(context.Background(), rooms, nil, months, testFees(t))
	require.NoError(t, err)
	require.Equal(t, 1, count)

	stored := store.rows("transactions")
	require.Len(t, stored, 1)
	tx := stored[0]

	amount := tx["amount"].(decimal.Decimal)
	assert.True(t, amount.Equal(decimal.RequireFromString("350.00")), "got amount %s", amount)

	assert.Equal(t, "owner-1", tx["user_id"])
	assert.Equal(t, "room-1", tx["room_id"])
	assert.Equal(t, nil, tx["parking_id"])
	assert.Equal(t, FeeProperty, tx["fee_type"])

	wantStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local).Unix()
	wantEnd := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local).Unix()
	assert.Equal(t, wantStart, tx["period_start"])
	assert.Equal(t, wantEnd, tx["period_end"])
	assert.Equal(t, wantEnd, tx["due_date"])
}

func TestAmountRounding(t *testing.T) {
	g, store := testGenerator(1, nil)

	// 87.66 * 3.5 = 306.81 exactly after rounding to 2 decimals.
	rooms := []RoomStub{{ID: "room-1", OwnerID: "owner-1", Area: decimal.RequireFromString("87.66")}}
	months := []time.Time{time.Date(2024, time.May, 1, 0, 0, 0, 0, time.Local)}

	_, err := g.GenerateTransactions(context.Background(), rooms, nil, months, testFees(t))
	require.NoError(t, err)

	amount := store.rows("transactions")[0]["amount"].(decimal.Decimal)
	want := decimal.RequireFromString("87.66").Mul(propertyRate(t)).Round(2)
	assert.True(t, amount.Equal(want), "got amount %s want %s", amount, want)
}

func TestParkingFlatAmount(t *testing.T) {
	g, store := testGenerator(1, nil)

	parking := []ParkingStub{{ID: "spot-1", OwnerID: "owner-1"}}
	months := []time.Time{time.Date(2024, time.June, 1, 0, 0, 0, 0, time.Local)}

	count, err := g.GenerateTransactions(context.Background(), nil, parking, months, testFees(t))
	require.NoError(t, err)
	require.Equal(t, 1, count)

	tx := store.rows("transactions")[0]
	assert.Equal(t, nil, tx["room_id"])
	assert.Equal(t, "spot-1", tx["parking_id"])
	assert.Equal(t, FeeParking, tx["fee_type"])

	amount := tx["amount"].(decimal.Decimal)
	assert.True(t, amount.Equal(parkingRate(t)), "parking fee is the flat unit price, got %s", amount)
}

func TestPeriodCoverage(t *testing.T) {
	g, store := testGenerator(1, nil)

	rooms := []RoomStub{{ID: "room-1", OwnerID: "owner-1", Area: decimal.RequireFromString("95.5")}}
	months := make([]time.Time, 0, 6)
	for i := 0; i < 6; i++ {
		months = append(months, time.Date(2024, time.Month(1+i), 1, 0, 0, 0, 0, time.Local))
	}

	count, err := g.GenerateTransactions(context.Background(), rooms, nil, months, testFees(t))
	require.NoError(t, err)
	require.Equal(t, 6, count)

	stored := store.rows("transactions")
	require.Len(t, stored, 6)

	type window struct{ start, end int64 }
	windows := make([]window, 0, len(stored))
	for _, tx := range stored {
		windows = append(windows, window{tx["period_start"].(int64), tx["period_end"].(int64)})
	}

	for i, w := range windows {
		start := time.Unix(w.start, 0)
		end := time.Unix(w.end, 0)
		assert.Equal(t, 1, start.Day(), "window %d starts on day 1", i)
		assert.Equal(t, start.Month(), end.Month(), "window %d stays inside one month", i)
		assert.Equal(t, end.AddDate(0, 0, 1).Day(), 1, "window %d ends on the month's last day", i)

		for j := i + 1; j < len(windows); j++ {
			other := windows[j]
			overlap := w.start <= other.end && other.start <= w.end
			assert.False(t, overlap, "windows %d and %d must not overlap", i, j)
		}
	}
}

func TestDecemberRollover(t *testing.T) {
	g, store := testGenerator(1, nil)

	rooms := []RoomStub{{ID: "room-1", OwnerID: "owner-1", Area: decimal.RequireFromString("80")}}
	months := []time.Time{time.Date(2024, time.December, 5, 0, 0, 0, 0, time.Local)}

	_, err := g.GenerateTransactions(context.Background(), rooms, nil, months, testFees(t))
	require.NoError(t, err)

	tx := store.rows("transactions")[0]
	end := time.Unix(tx["period_end"].(int64), 0)
	assert.Equal(t, 2024, end.Year())
	assert.Equal(t, time.December, end.Month())
	assert.Equal(t, 31, end.Day())
}

func TestPaymentStatusConsistency(t *testing.T) {
	// Force every transaction paid: payment date must land inside the
	// period and the method must be a real one.
	g, store := testGenerator(4, func(p *config.Profile) {
		p.PaymentStatusWeights = []float64{0, 1, 0}
	})

	rooms := []RoomStub{{ID: "room-1", OwnerID: "owner-1", Area: decimal.RequireFromString("120")}}
	months := []time.Time{
		time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local),
	}

	_, err := g.GenerateTransactions(context.Background(), rooms, nil, months, testFees(t))
	require.NoError(t, err)

	for _, tx := range store.rows("transactions") {
		require.Equal(t, PaymentPaid, tx["status"])
		payment := tx["payment_date"].(int64)
		assert.GreaterOrEqual(t, payment, tx["period_start"].(int64))
		assert.LessOrEqual(t, payment, tx["due_date"].(int64))
		method := tx["payment_method"].(int)
		assert.GreaterOrEqual(t, method, MethodCash)
		assert.LessOrEqual(t, method, MethodBankTransfer)
	}
}

func TestUnpaidSentinel(t *testing.T) {
	g, store := testGenerator(4, func(p *config.Profile) {
		p.PaymentStatusWeights = []float64{1, 0, 0}
	})

	parking := []ParkingStub{{ID: "spot-1", OwnerID: "owner-1"}}
	months := []time.Time{time.Date(2024, time.April, 1, 0, 0, 0, 0, time.Local)}

	_, err := g.GenerateTransactions(context.Background(), nil, parking, months, testFees(t))
	require.NoError(t, err)

	tx := store.rows("transactions")[0]
	assert.Equal(t, PaymentUnpaid, tx["status"])
	assert.Equal(t, NoTimestamp, tx["payment_date"])
	assert.Equal(t, MethodCash, tx["payment_method"])
}

func TestMissingFeeStandardFails(t *testing.T) {
	g, _ := testGenerator(1, nil)
	rooms := []RoomStub{{ID: "room-1", OwnerID: "owner-1", Area: decimal.RequireFromString("100")}}

	_, err := g.GenerateTransactions(context.Background(), rooms, nil, nil, FeeSchedule{FeeParking: parkingRate(t)})
	require.Error(t, err)
}
