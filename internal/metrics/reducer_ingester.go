// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/handleinsight-backend/internal/handle/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reducerFetchBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "handleinsight",
		Subsystem: "reducer_ingester",
		Name:      "fetch_blocks_total",
		Help:      "Count of attempts to fetch a chunk of blocks.",
	}, []string{"network", "status"})

	reducerFetchBlocksDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "handleinsight",
		Subsystem: "reducer_ingester",
		Name:      "fetch_blocks_duration_seconds",
		Help:      "Duration of fetching a chunk of blocks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	reducerFetchBlocksSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "handleinsight",
		Subsystem: "reducer_ingester",
		Name:      "fetch_blocks_size",
		Help:      "Number of blocks fetched per chunk.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})

	reducerReduceBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "handleinsight",
		Subsystem: "reducer_ingester",
		Name:      "reduce_block_total",
		Help:      "Count of reduced blocks.",
	}, []string{"network", "status"})

	reducerReduceBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "handleinsight",
		Subsystem: "reducer_ingester",
		Name:      "reduce_block_duration_seconds",
		Help:      "Duration of reducing a single block.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"network", "status"})

	reducerCommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "handleinsight",
		Subsystem: "reducer_ingester",
		Name:      "commands_total",
		Help:      "Count of emitted mutation commands.",
	}, []string{"network", "op"})

	reducerCursorHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "handleinsight",
		Subsystem: "reducer_ingester",
		Name:      "cursor_height",
		Help:      "Next block height to be reduced.",
	}, []string{"network"})
)

// ReducerIngester tracks metrics for the handle reducer pipeline.
type ReducerIngester struct {
	network model.Network
}

// NewReducerIngester constructs a ReducerIngester with defaults.
func NewReducerIngester(network model.Network) *ReducerIngester {
	if network == "" {
		network = "unknown"
	}
	return &ReducerIngester{network: network}
}

// ObserveFetchBlocks records a chunk fetch outcome, size and duration.
func (m ReducerIngester) ObserveFetchBlocks(err error, blocks int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	reducerFetchBlocksTotal.WithLabelValues(string(m.network), status).Inc()
	reducerFetchBlocksDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	reducerFetchBlocksSize.WithLabelValues(string(m.network)).Observe(float64(blocks))
}

// ObserveReduceBlock records the reduction of one block.
func (m ReducerIngester) ObserveReduceBlock(err error, _ uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	reducerReduceBlockTotal.WithLabelValues(string(m.network), status).Inc()
	reducerReduceBlockDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveCommand counts an emitted command.
func (m ReducerIngester) ObserveCommand(op model.CommandOp) {
	reducerCommandsTotal.WithLabelValues(string(m.network), string(op)).Inc()
}

// ObserveCursor records the persisted cursor.
func (m ReducerIngester) ObserveCursor(next uint64) {
	reducerCursorHeight.WithLabelValues(string(m.network)).Set(float64(next))
}
