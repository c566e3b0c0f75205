package gen

import (
	"context"

	"github.com/Lumos-Labs-HQ/estateseed/internal/database"
)

// batchWriter accumulates rows for one table and flushes them once the
// buffer reaches its threshold, bounding peak memory during the large
// room/record/transaction stages. Flushes are plain inserts inside the
// run's transaction; nothing becomes durable before the final commit.
type batchWriter struct {
	store   database.Writer
	table   string
	columns []string
	limit   int
	rows    [][]any
}

func newBatchWriter(store database.Writer, table string, columns []string, limit int) *batchWriter {
	if limit < 1 {
		limit = 1
	}
	return &batchWriter{
		store:   store,
		table:   table,
		columns: columns,
		limit:   limit,
	}
}

func (b *batchWriter) Add(ctx context.Context, row ...any) error {
	b.rows = append(b.rows, row)
	if len(b.rows) >= b.limit {
		return b.Flush(ctx)
	}
	return nil
}

// Flush writes the remainder. Always called once at the end of a stage.
func (b *batchWriter) Flush(ctx context.Context) error {
	if len(b.rows) == 0 {
		return nil
	}
	if err := b.store.Insert(ctx, b.table, b.columns, b.rows); err != nil {
		return err
	}
	b.rows = b.rows[:0]
	return nil
}
