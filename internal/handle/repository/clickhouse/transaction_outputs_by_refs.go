package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
)

// TransactionOutputsByRefs resolves references against the historical output lookup table.
// References that are not indexed are absent from the result.
func (r *Repository) TransactionOutputsByRefs(ctx context.Context, network model.Network, refs []model.OutputRef) (_ map[model.OutputRef]model.Output, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transaction_outputs_by_refs", network, err, start)
	}()

	result := make(map[model.OutputRef]model.Output, len(refs))
	if len(refs) == 0 {
		return result, nil
	}

	wanted := make(map[model.OutputRef]struct{}, len(refs))
	txHashes := make([]string, 0, len(refs))
	for _, ref := range refs {
		if _, ok := wanted[ref]; ok {
			continue
		}
		wanted[ref] = struct{}{}
		txHashes = append(txHashes, ref.TxHash)
	}

	const query = `
SELECT
	tx_hash,
	output_index,
	anyLast(address) AS address,
	anyLast(lovelace) AS lovelace,
	anyLast(asset_policies) AS asset_policies,
	anyLast(asset_names) AS asset_names,
	anyLast(asset_quantities) AS asset_quantities
FROM cardano_transaction_outputs_lookup
WHERE network = ? AND tx_hash IN ?
GROUP BY
	tx_hash,
	output_index
SETTINGS max_threads = 1`

	rows, err := r.conn.Query(ctx, query, string(network), txHashes)
	if err != nil {
		return nil, fmt.Errorf("query transaction outputs by refs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var row outputRow
		if err = rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("scan transaction output: %w", err)
		}

		ref := model.OutputRef{TxHash: row.TxHash, Index: row.OutputIndex}
		if _, ok := wanted[ref]; !ok {
			continue
		}

		out, convErr := row.toModel()
		if convErr != nil {
			err = convErr
			return nil, err
		}
		result[ref] = out
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction outputs: %w", err)
	}

	return result, nil
}
