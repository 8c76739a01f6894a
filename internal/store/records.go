package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Record key names before prefixing.
const (
	KeyHighScore = "highScore"
	KeyBestRun   = "bestRun"
)

// Records reads and writes the persisted high score and best run on top
// of a KV. Malformed values are treated as absent.
type Records struct {
	kv     KV
	prefix string
	logger *zap.Logger
}

// NewRecords creates Records over kv. A non-empty prefix namespaces the
// keys: prefix "navyRanks" stores "navyRanksHighScore" and "navyRanksBestRun".
func NewRecords(kv KV, prefix string, logger *zap.Logger) *Records {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Records{kv: kv, prefix: prefix, logger: logger}
}

// Key returns the namespaced storage key for name.
func (r *Records) Key(name string) string {
	if r.prefix == "" {
		return name
	}
	first, size := utf8.DecodeRuneInString(name)
	return r.prefix + string(unicode.ToUpper(first)) + name[size:]
}

// HighScore returns the stored high score, 0 when absent or unparsable.
func (r *Records) HighScore(ctx context.Context) (int, error) {
	raw, err := r.kv.Get(ctx, r.Key(KeyHighScore))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("load high score: %w", err)
	}
	score, ok := ParseHighScore(raw)
	if !ok {
		r.logger.Warn("ignoring malformed high score", zap.String("value", raw))
	}
	return score, nil
}

// SaveHighScore stores score as a base-10 integer string.
func (r *Records) SaveHighScore(ctx context.Context, score int) error {
	if err := r.kv.Set(ctx, r.Key(KeyHighScore), strconv.Itoa(score)); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// BestRun returns the stored best run, nil when absent or unparsable.
func (r *Records) BestRun(ctx context.Context) (*BestRun, error) {
	raw, err := r.kv.Get(ctx, r.Key(KeyBestRun))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load best run: %w", err)
	}
	run, ok := ParseBestRun(raw)
	if !ok {
		r.logger.Warn("ignoring malformed best run", zap.String("value", raw))
	}
	return run, nil
}

// SaveBestRun stores run as JSON {"time","score","accuracy"}.
func (r *Records) SaveBestRun(ctx context.Context, run BestRun) error {
	b, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal best run: %w", err)
	}
	if err := r.kv.Set(ctx, r.Key(KeyBestRun), string(b)); err != nil {
		return fmt.Errorf("save best run: %w", err)
	}
	return nil
}

// Reset deletes both records.
func (r *Records) Reset(ctx context.Context) error {
	for _, name := range []string{KeyHighScore, KeyBestRun} {
		if err := r.kv.Delete(ctx, r.Key(name)); err != nil {
			return fmt.Errorf("reset %s: %w", name, err)
		}
	}
	return nil
}

// ParseHighScore decodes a stored high score. It reports false and
// returns 0 for anything that is not a non-negative base-10 integer.
func ParseHighScore(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ParseBestRun decodes a stored best run. JSON null is a valid "no run";
// anything undecodable or out of range reports false.
func ParseBestRun(raw string) (*BestRun, bool) {
	var run *BestRun
	if err := json.Unmarshal([]byte(raw), &run); err != nil {
		return nil, false
	}
	if run == nil {
		return nil, true
	}
	if run.ElapsedMs < 0 || run.Score < 0 || run.Accuracy < 0 || run.Accuracy > 100 {
		return nil, false
	}
	return run, true
}
