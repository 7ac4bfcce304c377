package ingester

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
	"github.com/goodnatureofminers/handleinsight-backend/pkg/workerpool"
)

type blockFetcher struct {
	source      BlockSource
	metrics     ReducerIngesterMetrics
	workerCount int
}

// Fetch loads the blocks in [from, to] concurrently and returns them ordered by height.
func (f *blockFetcher) Fetch(ctx context.Context, from, to uint64) (_ []*model.Block, err error) {
	started := time.Now()
	count := 0
	defer func() {
		f.metrics.ObserveFetchBlocks(err, count, started)
	}()

	if to < from {
		return nil, nil
	}

	heights := make([]uint64, 0, to-from+1)
	for h := from; h <= to; h++ {
		heights = append(heights, h)
	}

	blocks, err := workerpool.Collect(ctx, f.workerCount, heights, func(ctx context.Context, height uint64) (*model.Block, error) {
		block, err := f.source.FetchBlock(ctx, height)
		if err != nil {
			return nil, fmt.Errorf("fetch block %d: %w", height, err)
		}
		if block == nil {
			return nil, fmt.Errorf("fetch block %d: empty block", height)
		}
		if block.Height != height {
			return nil, fmt.Errorf("fetch block %d: source returned height %d", height, block.Height)
		}
		return block, nil
	})
	if err != nil {
		return nil, err
	}

	count = len(blocks)
	return blocks, nil
}
