// Package ingester runs the handle reducer over stored blocks and persists the emitted mutations.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/handleinsight-backend/internal/clock"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/chain"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
	"github.com/goodnatureofminers/handleinsight-backend/pkg/batcher"
	"go.uber.org/zap"
)

// Options tunes a ReducerService. Zero values fall back to defaults.
type Options struct {
	Name        string
	StartHeight uint64
	ChunkSize   uint64
	WorkerCount int
}

// ReducerService reduces blocks in height order and advances a persisted cursor.
type ReducerService struct {
	logger            *zap.Logger
	network           model.Network
	name              string
	startHeight       uint64
	chunkSize         uint64
	flushThreshold    int
	repo              ClickhouseRepository
	lookup            OutputLookup
	recorder          OutputRecorder
	source            BlockSource
	reducer           BlockReducer
	metrics           ReducerIngesterMetrics
	fetcher           *blockFetcher
	sleep             func(context.Context, time.Duration) error
	backoff           *clock.Backoff
	idleSleepDuration time.Duration
}

// NewReducerService builds a ReducerService with dependencies.
func NewReducerService(
	repo ClickhouseRepository,
	source BlockSource,
	lookup OutputLookup,
	blockReducer BlockReducer,
	metrics ReducerIngesterMetrics,
	network model.Network,
	logger *zap.Logger,
	opts Options,
) (*ReducerService, error) {
	if metrics == nil {
		return nil, errors.New("reducer ingester metrics is required")
	}
	if blockReducer == nil {
		return nil, errors.New("block reducer is required")
	}
	if opts.Name == "" {
		opts.Name = defaultReducerName
	}
	if opts.ChunkSize == 0 {
		opts.ChunkSize = defaultChunkSize
	}
	if opts.WorkerCount <= 0 {
		opts.WorkerCount = defaultWorkerCount
	}

	recorder, _ := lookup.(OutputRecorder)

	logger = logger.With(
		zap.String("network", string(network)),
		zap.String("reducer", opts.Name),
	)

	return &ReducerService{
		logger:            logger,
		network:           network,
		name:              opts.Name,
		startHeight:       opts.StartHeight,
		chunkSize:         opts.ChunkSize,
		flushThreshold:    mutationFlushThreshold,
		repo:              repo,
		lookup:            lookup,
		recorder:          recorder,
		source:            source,
		reducer:           blockReducer,
		metrics:           metrics,
		sleep:             clock.SleepWithContext,
		backoff:           &clock.Backoff{Min: sleepDuration, Max: maxSleepDuration},
		idleSleepDuration: idleSleepDuration,
		fetcher: &blockFetcher{
			source:      source,
			metrics:     metrics,
			workerCount: opts.WorkerCount,
		},
	}, nil
}

// Run reduces new blocks until the context is canceled.
// Consecutive failing iterations back off exponentially.
func (s *ReducerService) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := s.run(ctx)
		if err == nil {
			s.backoff.Reset()
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		delay := s.backoff.Next()
		s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", delay))
		if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
	}
}

func (s *ReducerService) run(ctx context.Context) error {
	next, err := s.repo.ReducerCursor(ctx, s.network, s.name)
	if err != nil {
		return fmt.Errorf("read reducer cursor: %w", err)
	}
	if next < s.startHeight {
		next = s.startHeight
	}

	latest, err := s.source.LatestHeight(ctx)
	if errors.Is(err, chain.ErrNoBlocks) {
		s.logger.Debug("no blocks stored yet; sleeping", zap.Duration("sleep", s.idleSleepDuration))
		return s.sleep(ctx, s.idleSleepDuration)
	}
	if err != nil {
		return fmt.Errorf("latest height: %w", err)
	}
	if latest < next {
		s.logger.Debug("reducer is up to date; sleeping",
			zap.Uint64("next", next),
			zap.Uint64("latest", latest),
			zap.Duration("sleep", s.idleSleepDuration),
		)
		return s.sleep(ctx, s.idleSleepDuration)
	}

	last := min(next+s.chunkSize-1, latest)
	blocks, err := s.fetcher.Fetch(ctx, next, last)
	if err != nil {
		return err
	}

	if err = s.reduce(ctx, blocks); err != nil {
		return err
	}

	if err = s.repo.SaveReducerCursor(ctx, s.network, s.name, last+1); err != nil {
		return fmt.Errorf("save reducer cursor: %w", err)
	}
	s.metrics.ObserveCursor(last + 1)
	s.logger.Info("blocks reduced", zap.Uint64("from", next), zap.Uint64("to", last))
	return nil
}

// reduce reduces blocks one after another and waits until every emitted mutation is stored.
func (s *ReducerService) reduce(ctx context.Context, blocks []*model.Block) error {
	b := batcher.New[model.Mutation](
		s.logger.Named("mutationBatcher"),
		s.repo.InsertMutations,
		batcher.Options{
			FlushSize:     s.flushThreshold,
			FlushInterval: mutationFlushInterval,
			RPS:           mutationFlushRPS,
		},
	)
	b.Start(ctx)

	reduceErr := s.reduceBlocks(ctx, blocks, b)
	if err := b.Stop(); err != nil {
		return fmt.Errorf("insert mutations: %w", err)
	}
	return reduceErr
}

func (s *ReducerService) reduceBlocks(ctx context.Context, blocks []*model.Block, sink mutationSink) error {
	for _, block := range blocks {
		if err := ctx.Err(); err != nil {
			return err
		}

		started := time.Now()
		bc := chain.NewBlockContext(ctx, s.lookup, *block)
		port := &mutationPort{sink: sink, metrics: s.metrics, block: block}
		err := s.reducer.ReduceBlock(ctx, *block, bc, port)
		s.metrics.ObserveReduceBlock(err, block.Height, started)
		if err != nil {
			return fmt.Errorf("reduce block %d: %w", block.Height, err)
		}
		if s.recorder != nil {
			s.recorder.Remember(*block)
		}

		if port.emitted > 0 {
			s.logger.Debug("block reduced", zap.Uint64("height", block.Height), zap.Int("mutations", port.emitted))
		}
	}
	return nil
}
