package controller

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/metamorph/internal/confblock"
	"github.com/danielpatrickdp/metamorph/internal/mutate"
	"github.com/danielpatrickdp/metamorph/internal/provenance"
	"github.com/danielpatrickdp/metamorph/internal/state"
)

// #region fixtures

type stubBuilder struct {
	err   error
	calls int
}

func (b *stubBuilder) Build(context.Context) error {
	b.calls++
	return b.err
}

type stubReplacer struct {
	err   error
	calls int
}

func (r *stubReplacer) Replace(string) error {
	r.calls++
	return r.err
}

type fixture struct {
	ctrl     *Controller
	store    *state.Store
	builder  *stubBuilder
	replacer *stubReplacer
	resource string
}

func newFixture(t *testing.T, mutateOpts func(*Options)) *fixture {
	t.Helper()
	dir := t.TempDir()

	resource := filepath.Join(dir, "metamorph.conf")
	if err := confblock.EnsureFile(resource, confblock.Default()); err != nil {
		t.Fatalf("EnsureFile: %v", err)
	}

	target := filepath.Join(dir, "metamorph.bin")
	if err := os.WriteFile(target, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write target: %v", err)
	}

	store, err := state.Open(filepath.Join(dir, "metamorph.state"))
	if err != nil {
		t.Fatalf("state.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	builder := &stubBuilder{}
	replacer := &stubReplacer{}
	opts := Options{
		ResourcePath: resource,
		TargetPath:   target,
		Defaults:     confblock.Default(),
		Policy:       mutate.NewPolicy(1),
		Store:        store,
		Builder:      builder,
		Replacer:     replacer,
		Gate:         func() float64 { return 0 }, // gate always fires
	}
	if mutateOpts != nil {
		mutateOpts(&opts)
	}

	return &fixture{
		ctrl:     New(opts, 1),
		store:    store,
		builder:  builder,
		replacer: replacer,
		resource: resource,
	}
}

func readResource(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read resource: %v", err)
	}
	return string(data)
}

// #endregion fixtures

// #region trigger-tests

func TestTriggerArithmetic(t *testing.T) {
	cfg := confblock.Default() // interval 10

	cases := []struct {
		iteration uint64
		fires     bool
	}{
		{0, false}, // explicit zero exclusion
		{10, true},
		{15, false},
		{20, true},
		{1, false},
	}

	for _, tc := range cases {
		f := newFixture(t, nil)
		outcome, err := f.ctrl.Attempt(context.Background(), cfg, tc.iteration)
		if err != nil {
			t.Fatalf("iteration %d: %v", tc.iteration, err)
		}
		if tc.fires {
			if outcome != Replaced {
				t.Fatalf("iteration %d: expected Replaced, got %s", tc.iteration, outcome)
			}
			if f.builder.calls != 1 || f.replacer.calls != 1 {
				t.Fatalf("iteration %d: builder=%d replacer=%d", tc.iteration, f.builder.calls, f.replacer.calls)
			}
		} else {
			if outcome != KeepRunning {
				t.Fatalf("iteration %d: expected KeepRunning, got %s", tc.iteration, outcome)
			}
			if f.builder.calls != 0 || f.replacer.calls != 0 {
				t.Fatalf("iteration %d: collaborators touched on non-trigger tick", tc.iteration)
			}
		}
	}
}

func TestGateSkipHasNoSideEffects(t *testing.T) {
	f := newFixture(t, func(o *Options) {
		o.Gate = func() float64 { return 0.999 } // above any valid prob
	})
	before := readResource(t, f.resource)

	outcome, err := f.ctrl.Attempt(context.Background(), confblock.Default(), 10)
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if outcome != KeepRunning {
		t.Fatalf("expected KeepRunning, got %s", outcome)
	}
	if f.builder.calls != 0 {
		t.Fatal("builder must not run on a skipped gate")
	}
	if readResource(t, f.resource) != before {
		t.Fatal("resource mutated on a skipped gate")
	}
}

// #endregion trigger-tests

// #region failure-tests

func TestBuildFailureLeavesMutationStaged(t *testing.T) {
	f := newFixture(t, func(o *Options) {
		o.Builder = &stubBuilder{err: errors.New("compiler exploded")}
	})
	before := readResource(t, f.resource)

	// Max mutation probability so the per-field gates all but certainly
	// perturb at least one field.
	cfg := confblock.Default()
	cfg.MutationProb = confblock.MaxMutationProb

	outcome, err := f.ctrl.Attempt(context.Background(), cfg, 10)
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if outcome != KeepRunning {
		t.Fatalf("expected KeepRunning, got %s", outcome)
	}
	if f.replacer.calls != 0 {
		t.Fatal("replacer must not run after a failed build")
	}

	// The mutated config stays on disk for the next attempt. This is the
	// accepted staged state, not something the controller repairs.
	after := readResource(t, f.resource)
	if after == before {
		t.Fatal("mutation should be staged in the resource despite the failed build")
	}
	staged := confblock.Extract(after)
	if staged.LearningRate < confblock.MinLearningRate ||
		staged.MutationProb < confblock.MinMutationProb || staged.MutationProb > confblock.MaxMutationProb ||
		staged.RecompileInterval < confblock.MinRecompileInterval {
		t.Fatalf("staged config out of bounds: %+v", staged)
	}
}

func TestVerifyFailureAborts(t *testing.T) {
	f := newFixture(t, func(o *Options) {
		o.TargetPath = filepath.Join(t.TempDir(), "does-not-exist")
	})

	outcome, err := f.ctrl.Attempt(context.Background(), confblock.Default(), 10)
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if outcome != KeepRunning {
		t.Fatalf("expected KeepRunning, got %s", outcome)
	}
	if f.builder.calls != 1 {
		t.Fatal("build should have run before verify failed")
	}
	if f.replacer.calls != 0 {
		t.Fatal("replacer must not run when verify fails")
	}
}

func TestNonExecutableTargetAborts(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "not-executable")
	if err := os.WriteFile(plain, []byte("data"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f := newFixture(t, func(o *Options) {
		o.TargetPath = plain
	})

	outcome, err := f.ctrl.Attempt(context.Background(), confblock.Default(), 10)
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if outcome != KeepRunning || f.replacer.calls != 0 {
		t.Fatalf("non-executable target must abort: outcome=%s replacer=%d", outcome, f.replacer.calls)
	}
}

func TestReplaceCallFailureIsFatal(t *testing.T) {
	f := newFixture(t, func(o *Options) {
		o.Replacer = &stubReplacer{err: errors.New("execve: permission denied")}
	})

	_, err := f.ctrl.Attempt(context.Background(), confblock.Default(), 10)
	if err == nil {
		t.Fatal("a failing replace call must surface as a fatal error")
	}
}

// #endregion failure-tests

// #region replace-tests

func TestIterationAdvancesAcrossHandover(t *testing.T) {
	f := newFixture(t, nil)
	f.store.SetIteration(10)

	outcome, err := f.ctrl.Attempt(context.Background(), confblock.Default(), 10)
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if outcome != Replaced {
		t.Fatalf("expected Replaced, got %s", outcome)
	}
	if got := f.store.Iteration(); got != 11 {
		t.Fatalf("handover must advance the iteration: got %d, want 11", got)
	}
}

func TestProvenanceRowsRecorded(t *testing.T) {
	dir := t.TempDir()
	attempts, err := provenance.NewStore(filepath.Join(dir, "p.db"))
	if err != nil {
		t.Fatalf("provenance.NewStore: %v", err)
	}
	defer attempts.Close()

	f := newFixture(t, func(o *Options) {
		o.Log = attempts
		o.Gate = func() float64 { return 0.999 }
	})
	if _, err := f.ctrl.Attempt(context.Background(), confblock.Default(), 10); err != nil {
		t.Fatalf("Attempt: %v", err)
	}

	f2 := newFixture(t, func(o *Options) {
		o.Log = attempts
	})
	if _, err := f2.ctrl.Attempt(context.Background(), confblock.Default(), 20); err != nil {
		t.Fatalf("Attempt: %v", err)
	}

	rows, err := attempts.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Newest first.
	if rows[0].Stage != provenance.StageReplace || rows[0].Decision != provenance.DecisionReplace {
		t.Fatalf("row 0: %+v", rows[0])
	}
	if rows[0].ConfigJSON == "" {
		t.Fatal("replace row should carry the proposed config")
	}
	if rows[1].Stage != provenance.StageTrigger || rows[1].Decision != provenance.DecisionSkip {
		t.Fatalf("row 1: %+v", rows[1])
	}
}

// #endregion replace-tests
