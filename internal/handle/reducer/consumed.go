package reducer

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/cardano"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
	"go.uber.org/zap"
)

// processConsumed removes the handles held by a consumed output from its address set.
// The previous owner is not verified; removing an absent member is a no-op downstream.
func (r *Reducer) processConsumed(ctx context.Context, bc BlockContext, ref model.OutputRef, out OutputPort) error {
	txo, err := r.resolveOutput(ctx, bc, ref)
	if err != nil {
		return err
	}
	if txo == nil {
		return nil
	}

	handles := r.handles(*txo)
	if len(handles) == 0 {
		return nil
	}

	address, err := cardano.RenderAddress(txo.Address)
	if err != nil {
		return fmt.Errorf("render address of consumed output %s: %w", ref, err)
	}

	for _, handle := range handles {
		r.logger.Debug("handle consumed", zap.String("address", address), zap.String("handle", handle))

		cmd := model.SetRemove(model.CollectionAddressToHandles, r.config.KeyPrefixAddressToHandles, address, handle)
		if err := out.Send(ctx, cmd); err != nil {
			return fmt.Errorf("send set remove for %s: %w", handle, err)
		}
	}
	return nil
}
