// Package gen is the entity-graph generation and billing-computation
// engine. Generators run in dependency order, each returning the
// identifier pools later generators draw their references from, and
// write rows through a database.Writer so the whole pipeline is
// testable against an in-memory store.
package gen

import "github.com/shopspring/decimal"

// Role permission levels.
const (
	PermissionAdmin = 1
	PermissionStaff = 2
	PermissionOwner = 3
)

// Fixed role identifiers, shared with the application.
const (
	RoleAdmin = "role_admin"
	RoleStaff = "role_staff"
	RoleOwner = "role_owner"
)

// Fee type codes as stored in fee_standards and transactions.
const (
	FeeProperty = 1
	FeeParking  = 2
	FeeWater    = 3
	FeeElectric = 4
	FeeGas      = 5
)

// Asset occupancy status. Derived from ownership, never sampled.
const (
	AssetVacant   = 0
	AssetOccupied = 1
)

// User/staff account status.
const StatusActive = 1

// Service record status.
const (
	RecordPending    = 0
	RecordInProgress = 1
	RecordDone       = 2
)

// Transaction payment status.
const (
	PaymentUnpaid  = 0
	PaymentPaid    = 1
	PaymentOverdue = 2
)

// Payment methods. MethodCash doubles as the placeholder on unpaid and
// overdue transactions, where the column carries no meaning.
const (
	MethodCash          = 0
	MethodMobileWalletA = 1
	MethodMobileWalletB = 2
	MethodBankTransfer  = 3
)

// NoTimestamp is the stored sentinel for "no real timestamp", used for
// unset payment dates and open-ended fee standard ranges.
const NoTimestamp int64 = 0

// BuildingInfo is the pool entry rooms and service areas draw from.
type BuildingInfo struct {
	ID     string
	Floors int
}

// RoomStub carries what later stages need from a generated room: the
// billing engine reads Area and OwnerID, the service record generator
// only the ID. An empty OwnerID means vacant.
type RoomStub struct {
	ID      string
	OwnerID string
	Area    decimal.Decimal
}

// ParkingStub mirrors RoomStub for parking spaces.
type ParkingStub struct {
	ID      string
	OwnerID string
}

// TargetKind discriminates what a service record points at. The stored
// column stays a bare identifier, but inside the engine the target is
// always tagged so nothing has to guess which entity space to resolve
// against.
type TargetKind int

const (
	TargetBuilding TargetKind = iota
	TargetRoom
)

// Target is a tagged reference to either a building or a room.
type Target struct {
	Kind TargetKind
	ID   string
}

// FeeSchedule maps a fee type code to its current unit price. Where
// several standards share a code, the first seeded row wins.
type FeeSchedule map[int]decimal.Decimal
