package ingester

import "time"

const (
	defaultReducerName = "handles"
	defaultWorkerCount = 8

	defaultChunkSize uint64 = 100

	mutationFlushThreshold = 5000
	mutationFlushInterval  = 1 * time.Second
	mutationFlushRPS       = 20

	sleepDuration     = 5 * time.Second
	maxSleepDuration  = 1 * time.Minute
	idleSleepDuration = 2 * time.Second
)
