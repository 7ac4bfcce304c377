package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
)

// FetchBlock assembles a decoded block with its transactions and outputs in ledger order.
func (r *Repository) FetchBlock(ctx context.Context, network model.Network, height uint64) (_ *model.Block, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("fetch_block", network, err, start)
	}()

	block, err := r.blockHeader(ctx, network, height)
	if err != nil {
		return nil, err
	}

	txs, err := r.blockTransactions(ctx, network, height)
	if err != nil {
		return nil, err
	}

	outputs, err := r.blockOutputs(ctx, network, height)
	if err != nil {
		return nil, err
	}

	positions := make(map[string]int, len(txs))
	for i, tx := range txs {
		positions[tx.Hash] = i
	}
	for _, out := range outputs {
		pos, ok := positions[out.Ref.TxHash]
		if !ok {
			return nil, fmt.Errorf("block %d output %s belongs to unknown transaction", height, out.Ref)
		}
		if int(out.Ref.Index) != len(txs[pos].Outputs) {
			return nil, fmt.Errorf("block %d output %s out of sequence, expected index %d", height, out.Ref, len(txs[pos].Outputs))
		}
		txs[pos].Outputs = append(txs[pos].Outputs, out)
	}

	block.Transactions = txs
	return block, nil
}

func (r *Repository) blockHeader(ctx context.Context, network model.Network, height uint64) (_ *model.Block, err error) {
	const query = `
SELECT slot, hash
FROM cardano_blocks FINAL
WHERE network = ? AND height = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, string(network), height)
	if err != nil {
		return nil, fmt.Errorf("query block %d: %w", height, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	block := &model.Block{Network: network, Height: height}
	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate block %d: %w", height, err)
		}
		return nil, fmt.Errorf("block %d: %w", height, ErrBlockNotFound)
	}
	if err = rows.Scan(&block.Slot, &block.Hash); err != nil {
		return nil, fmt.Errorf("scan block %d: %w", height, err)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block %d: %w", height, err)
	}
	return block, nil
}

func (r *Repository) blockTransactions(ctx context.Context, network model.Network, height uint64) (_ []model.Transaction, err error) {
	const query = `
SELECT tx_hash, input_tx_hashes, input_indexes
FROM cardano_transactions FINAL
WHERE network = ? AND height = ?
ORDER BY tx_index ASC`

	rows, err := r.conn.Query(ctx, query, string(network), height)
	if err != nil {
		return nil, fmt.Errorf("query transactions of block %d: %w", height, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	txs := make([]model.Transaction, 0)
	for rows.Next() {
		var (
			hash         string
			inputHashes  []string
			inputIndexes []uint32
		)
		if err = rows.Scan(&hash, &inputHashes, &inputIndexes); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if len(inputHashes) != len(inputIndexes) {
			return nil, fmt.Errorf("transaction %s input columns length mismatch: %d hashes, %d indexes", hash, len(inputHashes), len(inputIndexes))
		}

		inputs := make([]model.OutputRef, 0, len(inputHashes))
		for i := range inputHashes {
			inputs = append(inputs, model.OutputRef{TxHash: inputHashes[i], Index: inputIndexes[i]})
		}
		txs = append(txs, model.Transaction{Hash: hash, Inputs: inputs})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func (r *Repository) blockOutputs(ctx context.Context, network model.Network, height uint64) (_ []model.Output, err error) {
	const query = `
SELECT
	tx_hash,
	output_index,
	address,
	lovelace,
	asset_policies,
	asset_names,
	asset_quantities
FROM cardano_transaction_outputs FINAL
WHERE network = ? AND height = ?
ORDER BY tx_hash ASC, output_index ASC`

	rows, err := r.conn.Query(ctx, query, string(network), height)
	if err != nil {
		return nil, fmt.Errorf("query outputs of block %d: %w", height, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	outputs := make([]model.Output, 0)
	for rows.Next() {
		var row outputRow
		if err = rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("scan output: %w", err)
		}
		out, convErr := row.toModel()
		if convErr != nil {
			err = convErr
			return nil, err
		}
		outputs = append(outputs, out)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outputs: %w", err)
	}
	return outputs, nil
}
