// Package reducer turns decoded blocks into handle ownership mutation commands.
package reducer

import (
	"context"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/policy"
	"go.uber.org/zap"
)

// Reducer projects handle ownership out of blocks. It holds no state between blocks.
type Reducer struct {
	config   Config
	policy   policy.RuntimePolicy
	classify Classifier
	logger   *zap.Logger
}

// New validates cfg and builds a Reducer. The runtime policy is copied.
func New(cfg Config, runtimePolicy policy.RuntimePolicy, logger *zap.Logger) (*Reducer, error) {
	cfg, err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Reducer{
		config:   cfg,
		policy:   runtimePolicy,
		classify: PolicyClassifier(cfg.PolicyIDHex),
		logger:   logger,
	}, nil
}

// ReduceBlock emits the commands of block to out.
//
// Transactions are processed in block order. Within a transaction every consumed
// reference is processed in listed order before any produced output, which are
// then processed in listed order. The first error aborts the block; commands
// already sent are not compensated.
func (r *Reducer) ReduceBlock(ctx context.Context, block model.Block, bc BlockContext, out OutputPort) error {
	for _, tx := range block.Transactions {
		for _, ref := range tx.Inputs {
			if err := r.processConsumed(ctx, bc, ref, out); err != nil {
				return err
			}
		}

		for i, txo := range tx.Outputs {
			if txo.Ref.TxHash == "" {
				txo.Ref = model.OutputRef{TxHash: tx.Hash, Index: uint32(i)}
			}
			if err := r.processProduced(ctx, txo, out); err != nil {
				return err
			}
		}
	}
	return nil
}
