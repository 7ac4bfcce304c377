package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/reducer"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*model.Block, error)
	}
	OutputLookup interface {
		TransactionOutputsByRefs(ctx context.Context, network model.Network, refs []model.OutputRef) (map[model.OutputRef]model.Output, error)
	}
	// OutputRecorder is implemented by lookups that learn outputs from reduced blocks.
	OutputRecorder interface {
		Remember(block model.Block)
	}
	BlockReducer interface {
		ReduceBlock(ctx context.Context, block model.Block, bc reducer.BlockContext, out reducer.OutputPort) error
	}
	ClickhouseRepository interface {
		ReducerCursor(ctx context.Context, network model.Network, name string) (uint64, error)
		SaveReducerCursor(ctx context.Context, network model.Network, name string, next uint64) error
		InsertMutations(ctx context.Context, mutations []model.Mutation) error
	}
	ReducerIngesterMetrics interface {
		ObserveFetchBlocks(err error, blocks int, started time.Time)
		ObserveReduceBlock(err error, height uint64, started time.Time)
		ObserveCommand(op model.CommandOp)
		ObserveCursor(next uint64)
	}
)
