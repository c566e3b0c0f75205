package gen

import (
	"context"
	"fmt"
)

// memWriter is the in-memory stand-in for database.Store used by the
// generator tests. Rows are kept as column-name maps; the first column
// of every table acts as its primary key.
type memWriter struct {
	tables  map[string][]map[string]any
	keys    map[string]map[any]bool
	inserts int
}

func newMemWriter() *memWriter {
	return &memWriter{
		tables: make(map[string][]map[string]any),
		keys:   make(map[string]map[any]bool),
	}
}

func (m *memWriter) add(table string, columns []string, row []any) error {
	if len(row) != len(columns) {
		return fmt.Errorf("row has %d values for %d columns", len(row), len(columns))
	}
	record := make(map[string]any, len(columns))
	for i, col := range columns {
		record[col] = row[i]
	}
	m.tables[table] = append(m.tables[table], record)
	m.keys[table][row[0]] = true
	return nil
}

func (m *memWriter) ensureKeys(table string) {
	if m.keys[table] == nil {
		m.keys[table] = make(map[any]bool)
	}
}

func (m *memWriter) Insert(ctx context.Context, table string, columns []string, rows [][]any) error {
	m.ensureKeys(table)
	m.inserts++
	for _, row := range rows {
		if m.keys[table][row[0]] {
			return fmt.Errorf("duplicate key %v in table %s", row[0], table)
		}
		if err := m.add(table, columns, row); err != nil {
			return err
		}
	}
	return nil
}

func (m *memWriter) InsertIgnore(ctx context.Context, table string, columns []string, rows [][]any) error {
	m.ensureKeys(table)
	m.inserts++
	for _, row := range rows {
		if m.keys[table][row[0]] {
			continue
		}
		if err := m.add(table, columns, row); err != nil {
			return err
		}
	}
	return nil
}

func (m *memWriter) rows(table string) []map[string]any {
	return m.tables[table]
}
