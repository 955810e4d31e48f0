package provenance

import (
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLogAndRecent(t *testing.T) {
	s := tempStore(t)

	first := AttemptEntry{
		GenerationID: "gen-1",
		Iteration:    10,
		Stage:        StageTrigger,
		Decision:     DecisionSkip,
		Reason:       "gate draw 0.8 >= prob 0.5",
	}
	second := AttemptEntry{
		GenerationID: "gen-2",
		Iteration:    20,
		Stage:        StageReplace,
		Decision:     DecisionReplace,
		Reason:       "exec /usr/local/bin/metamorph",
		ConfigJSON:   `{"LearningRate":0.06}`,
	}
	if err := s.LogAttempt(first); err != nil {
		t.Fatalf("LogAttempt: %v", err)
	}
	if err := s.LogAttempt(second); err != nil {
		t.Fatalf("LogAttempt: %v", err)
	}

	rows, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Newest first.
	if rows[0].GenerationID != "gen-2" || rows[0].Iteration != 20 {
		t.Fatalf("row 0: %+v", rows[0])
	}
	if rows[0].ConfigJSON == "" || rows[0].CreatedAt.IsZero() {
		t.Fatalf("row 0 missing config/timestamp: %+v", rows[0])
	}
	if rows[1].GenerationID != "gen-1" || rows[1].ConfigJSON != "" {
		t.Fatalf("row 1: %+v", rows[1])
	}
}

func TestRecentLimit(t *testing.T) {
	s := tempStore(t)
	for i := 0; i < 5; i++ {
		e := AttemptEntry{GenerationID: "g", Iteration: uint64(i), Stage: StageTrigger, Decision: DecisionSkip}
		if err := s.LogAttempt(e); err != nil {
			t.Fatalf("LogAttempt: %v", err)
		}
	}
	rows, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(rows) != 2 || rows[0].Iteration != 4 {
		t.Fatalf("limit not honored: %+v", rows)
	}
}

func TestNilStoreIsNoOp(t *testing.T) {
	var s *Store
	if err := s.LogAttempt(AttemptEntry{Stage: StageTrigger, Decision: DecisionSkip}); err != nil {
		t.Fatalf("nil LogAttempt: %v", err)
	}
	rows, err := s.Recent(5)
	if err != nil || rows != nil {
		t.Fatalf("nil Recent: rows=%v err=%v", rows, err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
}
