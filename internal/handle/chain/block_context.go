package chain

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/policy"
)

// blockContextBatchSize controls how many references are fetched in one lookup call.
// It is a var to allow overriding in tests.
var blockContextBatchSize = 1000

// BlockContext resolves the outputs consumed by one block.
type BlockContext struct {
	outputs map[model.OutputRef]model.Output
	loadErr error
}

// NewBlockContext seeds the outputs produced inside the block and batch-resolves every other
// consumed reference. A lookup failure is kept and reported by FindOutput rather than returned,
// so the caller's runtime policy decides whether it is fatal.
func NewBlockContext(ctx context.Context, lookup OutputLookup, block model.Block) *BlockContext {
	c := &BlockContext{outputs: make(map[model.OutputRef]model.Output)}

	for _, tx := range block.Transactions {
		for i, out := range tx.Outputs {
			ref := model.OutputRef{TxHash: tx.Hash, Index: uint32(i)}
			out.Ref = ref
			c.outputs[ref] = out
		}
	}

	missing := make([]model.OutputRef, 0)
	seen := make(map[model.OutputRef]struct{})
	for _, tx := range block.Transactions {
		for _, ref := range tx.Inputs {
			if _, ok := c.outputs[ref]; ok {
				continue
			}
			if _, dup := seen[ref]; dup {
				continue
			}
			seen[ref] = struct{}{}
			missing = append(missing, ref)
		}
	}

	size := blockContextBatchSize
	if size <= 0 {
		size = 1000
	}
	for start := 0; start < len(missing); start += size {
		end := start + size
		if end > len(missing) {
			end = len(missing)
		}

		found, err := lookup.TransactionOutputsByRefs(ctx, block.Network, missing[start:end])
		if err != nil {
			c.loadErr = fmt.Errorf("query outputs for block %d: %w", block.Height, err)
			return c
		}
		for ref, out := range found {
			out.Ref = ref
			c.outputs[ref] = out
		}
	}

	return c
}

// FindOutput returns the output referenced by ref.
func (c *BlockContext) FindOutput(_ context.Context, ref model.OutputRef) (*model.Output, error) {
	if out, ok := c.outputs[ref]; ok {
		return &out, nil
	}
	if c.loadErr != nil {
		return nil, c.loadErr
	}
	return nil, fmt.Errorf("output %s: %w", ref, policy.ErrMissingData)
}
