package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{"kv", "run_events", "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.KV().Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.KV().Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "v" {
		t.Errorf("value = %q, want %q", got, "v")
	}
}

func TestSQLiteKV(t *testing.T) {
	s := openTestStore(t)
	kvContract(t, s.KV())
}

func TestMemoryKV(t *testing.T) {
	kvContract(t, NewMemoryKV())
}

// kvContract exercises the behaviour every KV backend must share.
func kvContract(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	if _, err := kv.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get missing: err = %v, want ErrNotFound", err)
	}

	if err := kv.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "a", "2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := kv.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "2" {
		t.Errorf("value = %q, want %q", got, "2")
	}

	if err := kv.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := kv.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}
	if err := kv.Delete(ctx, "a"); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestRunRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.RunRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		err := repo.AppendRun(ctx, RunEventData{
			RunID:     "run-" + string(rune('0'+i)),
			Score:     i,
			Total:     19,
			Accuracy:  i * 5,
			ElapsedMs: int64(i) * 1000,
			NewBest:   i == 3,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	runs, err := repo.QueryRuns(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("len = %d, want 3", len(runs))
	}
	if runs[0].RunID != "run-3" || !runs[0].NewBest {
		t.Errorf("newest = %+v, want run-3 with NewBest", runs[0])
	}
	if runs[2].Sequence >= runs[0].Sequence {
		t.Errorf("runs not ordered newest first: %d, %d", runs[0].Sequence, runs[2].Sequence)
	}
	if runs[1].ElapsedMs != 2000 || runs[1].Accuracy != 10 {
		t.Errorf("runs[1] = %+v", runs[1])
	}
	if runs[0].Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestRunRepo_QueryOpts(t *testing.T) {
	s := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	step := 0
	repo := &runRepo{db: s.DB(), seq: s.seq, now: func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Hour)
	}}
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.AppendRun(ctx, RunEventData{RunID: "r", Score: i, Total: 5}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	tests := []struct {
		name string
		opts QueryOpts
		want int
	}{
		{"limit", QueryOpts{Limit: 2}, 2},
		{"after", QueryOpts{After: 3}, 2},
		{"before", QueryOpts{Before: 3}, 2},
		{"from", QueryOpts{From: base.Add(4 * time.Hour)}, 2},
		{"to", QueryOpts{To: base.Add(2 * time.Hour)}, 2},
		{"window", QueryOpts{After: 1, Before: 5, Limit: 1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := repo.QueryRuns(ctx, tt.opts)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if len(runs) != tt.want {
				t.Errorf("len = %d, want %d", len(runs), tt.want)
			}
		})
	}
}
