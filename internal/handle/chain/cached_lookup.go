package chain

import (
	"context"
	"time"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
	cache "github.com/patrickmn/go-cache"
)

const cacheCleanupInterval = time.Minute

// CachedLookup keeps the outputs of recently reduced blocks in memory and forwards misses to next.
// Consumed outputs are evicted since an output is spent at most once.
type CachedLookup struct {
	next  OutputLookup
	cache *cache.Cache
	ttl   time.Duration
}

// NewCachedLookup wraps next with a cache whose entries expire after ttl.
func NewCachedLookup(next OutputLookup, ttl time.Duration) *CachedLookup {
	return &CachedLookup{
		next:  next,
		cache: cache.New(ttl, cacheCleanupInterval),
		ttl:   ttl,
	}
}

// Remember records the outputs produced by block and evicts the ones it consumed.
func (l *CachedLookup) Remember(block model.Block) {
	for _, tx := range block.Transactions {
		for _, ref := range tx.Inputs {
			l.cache.Delete(cacheKey(block.Network, ref))
		}
		for i, out := range tx.Outputs {
			out.Ref = model.OutputRef{TxHash: tx.Hash, Index: uint32(i)}
			l.cache.Set(cacheKey(block.Network, out.Ref), out, l.ttl)
		}
	}
}

// TransactionOutputsByRefs serves cached references and looks the rest up in one call.
func (l *CachedLookup) TransactionOutputsByRefs(ctx context.Context, network model.Network, refs []model.OutputRef) (map[model.OutputRef]model.Output, error) {
	result := make(map[model.OutputRef]model.Output, len(refs))
	misses := make([]model.OutputRef, 0, len(refs))
	for _, ref := range refs {
		if cached, ok := l.cache.Get(cacheKey(network, ref)); ok {
			result[ref] = cached.(model.Output)
			continue
		}
		misses = append(misses, ref)
	}
	if len(misses) == 0 {
		return result, nil
	}

	found, err := l.next.TransactionOutputsByRefs(ctx, network, misses)
	if err != nil {
		return nil, err
	}
	for ref, out := range found {
		result[ref] = out
	}
	return result, nil
}

func cacheKey(network model.Network, ref model.OutputRef) string {
	return string(network) + "/" + ref.String()
}
