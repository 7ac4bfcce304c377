package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
)

// ReducerCursor returns the next height the named reducer has to process, zero if it never ran.
func (r *Repository) ReducerCursor(ctx context.Context, network model.Network, reducer string) (_ uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("reducer_cursor", network, err, start)
	}()

	const query = `
SELECT argMax(next_height, updated_at) AS next_height
FROM handle_reducer_cursor
WHERE network = ? AND reducer = ?`

	rows, err := r.conn.Query(ctx, query, string(network), reducer)
	if err != nil {
		return 0, fmt.Errorf("query reducer cursor: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var next uint64
	if !rows.Next() {
		return 0, fmt.Errorf("reducer cursor not found")
	}
	if err = rows.Scan(&next); err != nil {
		return 0, fmt.Errorf("scan reducer cursor: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate reducer cursor: %w", err)
	}
	return next, nil
}

// SaveReducerCursor records next as the height the named reducer continues from.
func (r *Repository) SaveReducerCursor(ctx context.Context, network model.Network, reducer string, next uint64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("save_reducer_cursor", network, err, start)
	}()

	const query = `
INSERT INTO handle_reducer_cursor (
	network,
	reducer,
	next_height,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare reducer cursor batch: %w", err)
	}
	if err = batch.Append(string(network), reducer, next, time.Now().UTC()); err != nil {
		return fmt.Errorf("append reducer cursor: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("save reducer cursor: %w", err)
	}
	return nil
}
