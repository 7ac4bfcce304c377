package ingester

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
	"github.com/goodnatureofminers/handleinsight-backend/pkg/safe"
)

type mutationSink interface {
	Add(ctx context.Context, m model.Mutation) error
}

// mutationPort stamps commands of one block with their position and queues them for insertion.
type mutationPort struct {
	sink    mutationSink
	metrics ReducerIngesterMetrics
	block   *model.Block
	emitted int
}

func (p *mutationPort) Send(ctx context.Context, cmd model.Command) error {
	seq, err := safe.Uint32(p.emitted)
	if err != nil {
		return fmt.Errorf("block %d mutation sequence: %w", p.block.Height, err)
	}

	m := model.Mutation{
		Network:     p.block.Network,
		BlockHeight: p.block.Height,
		Slot:        p.block.Slot,
		Seq:         seq,
		Command:     cmd,
	}
	if err = p.sink.Add(ctx, m); err != nil {
		return err
	}

	p.emitted++
	p.metrics.ObserveCommand(cmd.Op)
	return nil
}
