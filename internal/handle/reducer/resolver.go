package reducer

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/policy"
	"go.uber.org/zap"
)

// resolveOutput returns the output referenced by ref, or nil when the runtime
// policy tolerates the failure to resolve it.
func (r *Reducer) resolveOutput(ctx context.Context, bc BlockContext, ref model.OutputRef) (*model.Output, error) {
	out, err := bc.FindOutput(ctx, ref)
	if err == nil && out == nil {
		err = fmt.Errorf("output %s: %w", ref, policy.ErrMissingData)
	}
	if err == nil {
		return out, nil
	}

	action := r.policy.ActionFor(err)
	if !action.Tolerated() {
		return nil, fmt.Errorf("resolve output %s: %w", ref, err)
	}
	if action == policy.Warn {
		r.logger.Warn("skipping unresolved output", zap.Stringer("ref", ref), zap.Error(err))
	} else {
		r.logger.Debug("skipping unresolved output", zap.Stringer("ref", ref), zap.Error(err))
	}
	return nil, nil
}
