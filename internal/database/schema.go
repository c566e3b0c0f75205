package database

import (
	"context"
	"fmt"
)

// The table layout downstream consumers bind to: opaque string
// identifiers, epoch-second timestamps with 0 as the "unset" sentinel,
// and small-integer enumerations.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS roles (
		role_id TEXT PRIMARY KEY,
		role_name TEXT NOT NULL,
		permission_level INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		user_id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		phone_number TEXT,
		email TEXT,
		role_id TEXT NOT NULL,
		status INTEGER DEFAULT 1,
		registration_date INTEGER NOT NULL,
		FOREIGN KEY (role_id) REFERENCES roles(role_id)
	)`,
	`CREATE TABLE IF NOT EXISTS buildings (
		building_id TEXT PRIMARY KEY,
		building_name TEXT NOT NULL,
		address TEXT NOT NULL,
		floors_count INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		room_id TEXT PRIMARY KEY,
		building_id TEXT NOT NULL,
		room_number TEXT NOT NULL,
		floor INTEGER NOT NULL,
		area_sqm REAL NOT NULL,
		owner_id TEXT,
		status INTEGER DEFAULT 0,
		FOREIGN KEY (building_id) REFERENCES buildings(building_id),
		FOREIGN KEY (owner_id) REFERENCES users(user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS parking_spaces (
		parking_id TEXT PRIMARY KEY,
		parking_number TEXT NOT NULL,
		owner_id TEXT,
		status INTEGER DEFAULT 0,
		FOREIGN KEY (owner_id) REFERENCES users(user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS staff_types (
		staff_type_id TEXT PRIMARY KEY,
		type_name TEXT NOT NULL,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS staff (
		staff_id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		staff_type_id TEXT NOT NULL,
		hire_date INTEGER NOT NULL,
		status INTEGER DEFAULT 1,
		FOREIGN KEY (user_id) REFERENCES users(user_id),
		FOREIGN KEY (staff_type_id) REFERENCES staff_types(staff_type_id)
	)`,
	`CREATE TABLE IF NOT EXISTS service_areas (
		area_id TEXT PRIMARY KEY,
		staff_id TEXT NOT NULL,
		building_id TEXT NOT NULL,
		assignment_date INTEGER NOT NULL,
		FOREIGN KEY (staff_id) REFERENCES staff(staff_id),
		FOREIGN KEY (building_id) REFERENCES buildings(building_id)
	)`,
	`CREATE TABLE IF NOT EXISTS service_records (
		record_id TEXT PRIMARY KEY,
		staff_id TEXT NOT NULL,
		service_type TEXT NOT NULL,
		service_date INTEGER NOT NULL,
		description TEXT,
		status INTEGER DEFAULT 0,
		target_id TEXT NOT NULL,
		FOREIGN KEY (staff_id) REFERENCES staff(staff_id)
	)`,
	`CREATE TABLE IF NOT EXISTS fee_standards (
		standard_id TEXT PRIMARY KEY,
		fee_type INTEGER NOT NULL,
		price_per_unit REAL NOT NULL,
		unit TEXT NOT NULL,
		effective_date INTEGER NOT NULL,
		end_date INTEGER DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		transaction_id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		room_id TEXT,
		parking_id TEXT,
		fee_type INTEGER NOT NULL,
		amount REAL NOT NULL,
		payment_date INTEGER NOT NULL,
		due_date INTEGER NOT NULL,
		payment_method INTEGER DEFAULT 0,
		status INTEGER DEFAULT 0,
		period_start INTEGER NOT NULL,
		period_end INTEGER NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(user_id),
		FOREIGN KEY (room_id) REFERENCES rooms(room_id),
		FOREIGN KEY (parking_id) REFERENCES parking_spaces(parking_id)
	)`,
}

// EnsureSchema creates any missing tables. Runs on the bare handle,
// before the run's transaction: MySQL commits DDL implicitly, so mixing
// it with the deferred-commit insert transaction would break the
// all-or-nothing contract.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}
