package clickhouse

import (
	"context"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/chain"
	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
)

// Source exposes the blocks of one network as a chain.BlockSource.
type Source struct {
	repo    *Repository
	network model.Network
}

// NewSource binds repo to network.
func NewSource(repo *Repository, network model.Network) *Source {
	return &Source{repo: repo, network: network}
}

// LatestHeight returns the highest stored block, or chain.ErrNoBlocks when none is stored.
func (s *Source) LatestHeight(ctx context.Context) (uint64, error) {
	height, ok, err := s.repo.MaxBlockHeight(ctx, s.network)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, chain.ErrNoBlocks
	}
	return height, nil
}

// FetchBlock returns the block stored at height.
func (s *Source) FetchBlock(ctx context.Context, height uint64) (*model.Block, error) {
	return s.repo.FetchBlock(ctx, s.network, height)
}
