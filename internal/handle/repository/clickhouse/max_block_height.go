package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
)

// MaxBlockHeight returns the maximum height stored for a network and whether any block is stored.
func (r *Repository) MaxBlockHeight(ctx context.Context, network model.Network) (_ uint64, _ bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_block_height", network, err, start)
	}()

	const query = `
SELECT
	coalesce(max(height), toUInt64(0)) AS max_height,
	count() AS blocks
FROM cardano_blocks
WHERE network = ?`

	rows, err := r.conn.Query(ctx, query, string(network))
	if err != nil {
		return 0, false, fmt.Errorf("query max block height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var (
		height uint64
		blocks uint64
	)
	if !rows.Next() {
		return 0, false, fmt.Errorf("max block height not found")
	}
	if err = rows.Scan(&height, &blocks); err != nil {
		return 0, false, fmt.Errorf("scan max block height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max block height: %w", err)
	}

	return height, blocks > 0, nil
}
