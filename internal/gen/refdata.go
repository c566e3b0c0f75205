package gen

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Lumos-Labs-HQ/estateseed/internal/ident"
	"github.com/Lumos-Labs-HQ/estateseed/internal/timeutil"
)

// Fixed identifiers for the reference rows, so reruns against a
// populated database skip instead of duplicating.
const (
	defaultAdminUserID = "user_admin"
	defaultStaffUserID = "user_staff"
	defaultStaffTypeID = "stype_default"
	defaultStaffRowID  = "staff_default"
)

type feeStandard struct {
	ID      string
	FeeType int
	Price   decimal.Decimal
	Unit    string
}

// Two parking tiers are seeded (surface CF01, underground CF02) but
// billing currently charges every space the surface rate; see
// GenerateTransactions.
func defaultFeeStandards() []feeStandard {
	return []feeStandard{
		{ID: "PF01", FeeType: FeeProperty, Price: decimal.NewFromFloat(3.5), Unit: "per sqm/month"},
		{ID: "CF01", FeeType: FeeParking, Price: decimal.NewFromFloat(300.0), Unit: "per month"},
		{ID: "CF02", FeeType: FeeParking, Price: decimal.NewFromFloat(400.0), Unit: "per month"},
		{ID: "WF01", FeeType: FeeWater, Price: decimal.NewFromFloat(4.9), Unit: "per m3"},
		{ID: "EF01", FeeType: FeeElectric, Price: decimal.NewFromFloat(0.98), Unit: "per kWh"},
		{ID: "GF01", FeeType: FeeGas, Price: decimal.NewFromFloat(3.2), Unit: "per m3"},
	}
}

// SeedReferenceData inserts the fixed vocabulary everything else
// references: the three roles, the fee standards, and the default
// admin/staff accounts. All inserts skip on conflict so the seeder
// tolerates a non-empty target. Returns the fee schedule the billing
// engine prices against.
func (g *Generator) SeedReferenceData(ctx context.Context) (FeeSchedule, error) {
	roles := [][]any{
		{RoleAdmin, "Administrator", PermissionAdmin},
		{RoleStaff, "Property Staff", PermissionStaff},
		{RoleOwner, "Owner", PermissionOwner},
	}
	if err := g.store.InsertIgnore(ctx, "roles", roleColumns, roles); err != nil {
		return nil, fmt.Errorf("failed to seed roles: %w", err)
	}

	effective := timeutil.ToUnix(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local))
	standards := defaultFeeStandards()
	fees := make(FeeSchedule, len(standards))
	rows := make([][]any, 0, len(standards))
	for _, std := range standards {
		rows = append(rows, []any{std.ID, std.FeeType, std.Price, std.Unit, effective, NoTimestamp})
		if _, ok := fees[std.FeeType]; !ok {
			fees[std.FeeType] = std.Price
		}
	}
	if err := g.store.InsertIgnore(ctx, "fee_standards", feeColumns, rows); err != nil {
		return nil, fmt.Errorf("failed to seed fee standards: %w", err)
	}

	if err := g.seedDefaultAccounts(ctx); err != nil {
		return nil, err
	}

	return fees, nil
}

func (g *Generator) seedDefaultAccounts(ctx context.Context) error {
	now := timeutil.ToUnix(time.Now())

	users := [][]any{
		{defaultAdminUserID, "admin", ident.HashPassword("admin123"), "System Administrator", nil, nil, RoleAdmin, StatusActive, now},
		{defaultStaffUserID, "staff", ident.HashPassword("staff123"), "Property Attendant", nil, nil, RoleStaff, StatusActive, now},
	}
	if err := g.store.InsertIgnore(ctx, "users", userColumns, users); err != nil {
		return fmt.Errorf("failed to seed default users: %w", err)
	}

	types := [][]any{
		{defaultStaffTypeID, "General Staff", "Default service staff type"},
	}
	if err := g.store.InsertIgnore(ctx, "staff_types", staffTypeColumns, types); err != nil {
		return fmt.Errorf("failed to seed default staff type: %w", err)
	}

	staff := [][]any{
		{defaultStaffRowID, defaultStaffUserID, defaultStaffTypeID, now, StatusActive},
	}
	if err := g.store.InsertIgnore(ctx, "staff", staffColumns, staff); err != nil {
		return fmt.Errorf("failed to seed default staff record: %w", err)
	}

	return nil
}
