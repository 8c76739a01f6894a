package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by KV.Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// KV is a synchronous string key-value store. Reads and writes are
// atomic per key.
type KV interface {
	// Get returns the value stored at key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value at key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// BestRun is the all-time best completed run, ordered by score
// descending then elapsed time ascending.
type BestRun struct {
	ElapsedMs int64 `json:"time"`
	Score     int   `json:"score"`
	Accuracy  int   `json:"accuracy"`
}

// Beats reports whether a finished run with the given score and elapsed
// time should replace b. A nil receiver is beaten by any run.
func (b *BestRun) Beats(score int, elapsedMs int64) bool {
	if b == nil {
		return true
	}
	if score != b.Score {
		return score > b.Score
	}
	return elapsedMs < b.ElapsedMs
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// RunEventData captures a finished quiz run.
type RunEventData struct {
	RunID     string
	Score     int
	Total     int
	Accuracy  int
	ElapsedMs int64
	NewBest   bool
}

// RunRecord is a stored run event.
type RunRecord struct {
	Sequence  int64
	Timestamp time.Time
	RunEventData
}

// RunRepo provides append and query access to finished runs.
type RunRepo interface {
	// AppendRun records a finished run.
	AppendRun(ctx context.Context, data RunEventData) error

	// QueryRuns returns runs newest first.
	QueryRuns(ctx context.Context, opts QueryOpts) ([]RunRecord, error)
}
