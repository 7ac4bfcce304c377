// Package chain defines interfaces and structs shared between handle reduction components.
package chain

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockSource provides decoded blocks for reduction.
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*model.Block, error)
	}

	// OutputLookup resolves references against the historical output index.
	// References that are not indexed are absent from the result.
	OutputLookup interface {
		TransactionOutputsByRefs(ctx context.Context, network model.Network, refs []model.OutputRef) (map[model.OutputRef]model.Output, error)
	}
)

// ErrNoBlocks is returned by a BlockSource that holds no blocks yet.
var ErrNoBlocks = errors.New("no blocks available")
