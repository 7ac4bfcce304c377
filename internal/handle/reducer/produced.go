package reducer

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/cardano"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
	"go.uber.org/zap"
)

// processProduced points every handle held by a produced output at its address,
// emitting the handle->address write before the address->handles add.
func (r *Reducer) processProduced(ctx context.Context, txo model.Output, out OutputPort) error {
	handles := r.handles(txo)
	if len(handles) == 0 {
		return nil
	}

	address, err := cardano.RenderAddress(txo.Address)
	if err != nil {
		return fmt.Errorf("render address of produced output %s: %w", txo.Ref, err)
	}

	for _, handle := range handles {
		r.logger.Debug("handle produced", zap.String("handle", handle), zap.String("address", address))

		h2a := model.AnyWriteWins(model.CollectionHandleToAddress, r.config.KeyPrefixHandleToAddress, handle, address)
		if err := out.Send(ctx, h2a); err != nil {
			return fmt.Errorf("send any write wins for %s: %w", handle, err)
		}

		a2h := model.SetAdd(model.CollectionAddressToHandles, r.config.KeyPrefixAddressToHandles, address, handle)
		if err := out.Send(ctx, a2h); err != nil {
			return fmt.Errorf("send set add for %s: %w", handle, err)
		}
	}
	return nil
}
