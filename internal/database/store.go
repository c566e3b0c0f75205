package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Writer is the insert surface the generators run against. The real
// Store executes against one deferred transaction; tests substitute an
// in-memory implementation.
type Writer interface {
	Insert(ctx context.Context, table string, columns []string, rows [][]any) error
	InsertIgnore(ctx context.Context, table string, columns []string, rows [][]any) error
}

// Store wraps a single database/sql handle. All row inserts of a run
// execute inside one transaction opened by Begin; nothing is durable
// until Commit, and Close rolls back whatever was not committed.
type Store struct {
	db        *sql.DB
	tx        *sql.Tx
	qb        squirrel.StatementBuilderType
	provider  string
	committed bool
}

func Open(provider, url string) (*Store, error) {
	var driverName string
	var placeholder squirrel.PlaceholderFormat = squirrel.Question

	switch provider {
	case "postgresql", "postgres":
		driverName = "pgx"
		placeholder = squirrel.Dollar
	case "mysql":
		driverName = "mysql"
	case "sqlite", "sqlite3":
		driverName = "sqlite3"
		url = strings.TrimPrefix(url, "sqlite://")
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}

	db, err := sql.Open(driverName, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", provider, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{
		db:       db,
		qb:       squirrel.StatementBuilder.PlaceholderFormat(placeholder),
		provider: provider,
	}, nil
}

// Begin opens the run's transaction. Every Insert after this point is
// buffered by the database until Commit.
func (s *Store) Begin(ctx context.Context) error {
	if s.tx != nil {
		return fmt.Errorf("transaction already open")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	s.tx = tx
	s.committed = false
	return nil
}

// Commit makes the run durable. Called exactly once, at the very end.
func (s *Store) Commit() error {
	if s.tx == nil {
		return fmt.Errorf("no open transaction")
	}
	if err := s.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	s.tx = nil
	s.committed = true
	return nil
}

// Close releases the handle unconditionally. An uncommitted transaction
// is rolled back first, so an aborted run leaves no rows behind.
func (s *Store) Close() error {
	if s.tx != nil {
		s.tx.Rollback()
		s.tx = nil
	}
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Insert writes a multi-row batch into table.
func (s *Store) Insert(ctx context.Context, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	return s.exec(ctx, s.insertBuilder(table, columns, rows))
}

// InsertIgnore writes a batch skipping rows that conflict on the
// primary key, in the provider's dialect. The reference seeder relies
// on this to stay idempotent against a non-empty target.
func (s *Store) InsertIgnore(ctx context.Context, table string, columns []string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	builder := s.insertBuilder(table, columns, rows)

	switch s.provider {
	case "postgresql", "postgres":
		builder = builder.Suffix("ON CONFLICT DO NOTHING")
	case "mysql":
		builder = builder.Options("IGNORE")
	default:
		builder = builder.Options("OR IGNORE")
	}

	return s.exec(ctx, builder)
}

func (s *Store) insertBuilder(table string, columns []string, rows [][]any) squirrel.InsertBuilder {
	builder := s.qb.Insert(table).Columns(columns...)
	for _, row := range rows {
		builder = builder.Values(row...)
	}
	return builder
}

func (s *Store) exec(ctx context.Context, builder squirrel.InsertBuilder) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if s.tx != nil {
		_, err = s.tx.ExecContext(ctx, query, args...)
	} else {
		_, err = s.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		return fmt.Errorf("failed to execute insert: %w", err)
	}
	return nil
}
