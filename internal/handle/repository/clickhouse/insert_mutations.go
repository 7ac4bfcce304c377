package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
)

// InsertMutations appends mutations to the handle mutation log.
func (r *Repository) InsertMutations(ctx context.Context, mutations []model.Mutation) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_mutations", firstNetwork(mutations), err, start)
	}()

	if len(mutations) == 0 {
		return nil
	}

	const query = `
INSERT INTO handle_mutations (
	network,
	block_height,
	slot,
	seq,
	op,
	collection,
	key,
	value
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare mutations batch: %w", err)
	}

	for _, m := range mutations {
		if err = batch.Append(
			string(m.Network),
			m.BlockHeight,
			m.Slot,
			m.Seq,
			string(m.Command.Op),
			string(m.Command.Collection),
			m.Command.FullKey(),
			m.Command.Value,
		); err != nil {
			return fmt.Errorf("append mutation: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert mutations: %w", err)
	}
	return nil
}

func firstNetwork(mutations []model.Mutation) model.Network {
	if len(mutations) == 0 {
		return ""
	}
	return mutations[0].Network
}
