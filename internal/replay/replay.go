// Package replay simulates full self-replacement generations in-process:
// real state file, real config resource, but a fake builder and a replacer
// that reports the handover instead of exec'ing. Each generation reopens the
// state store the way a freshly exec'd process would.
package replay

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/danielpatrickdp/metamorph/internal/confblock"
	"github.com/danielpatrickdp/metamorph/internal/controller"
	"github.com/danielpatrickdp/metamorph/internal/mutate"
	"github.com/danielpatrickdp/metamorph/internal/orchestrator"
	"github.com/danielpatrickdp/metamorph/internal/provenance"
	"github.com/danielpatrickdp/metamorph/internal/reward"
	"github.com/danielpatrickdp/metamorph/internal/state"
)

// #region types
// SimOptions configures a simulation run.
type SimOptions struct {
	StatePath    string
	ResourcePath string
	Generations  int

	// MaxTicksPerGeneration bounds a generation that never triggers.
	MaxTicksPerGeneration int

	// Seed drives the mutation policy; 0 seeds from the clock.
	Seed int64

	// ForceMutation pins the trigger gate to zero so every trigger check
	// mutates and replaces.
	ForceMutation bool

	// Log may be nil.
	Log *provenance.Store

	// FailBuild makes the fake builder fail, exercising the staged-config
	// fallback path.
	FailBuild bool
}

// GenerationResult records one simulated generation.
type GenerationResult struct {
	Generation     int
	StartIteration uint64
	EndIteration   uint64
	ConfigBefore   confblock.Config
	ConfigAfter    confblock.Config
	Outcome        controller.Outcome
}

// #endregion types

// #region collaborators
type fakeBuilder struct {
	fail bool
}

func (b fakeBuilder) Build(context.Context) error {
	if b.fail {
		return fmt.Errorf("simulated build failure")
	}
	return nil
}

// reportReplacer returns instead of exec'ing, which surfaces the Replaced
// outcome the real replacer never lives to report.
type reportReplacer struct{}

func (reportReplacer) Replace(string) error { return nil }

// #endregion collaborators

// #region simulate
// Simulate runs opts.Generations full generations and returns one result per
// generation. The state file carries iteration count, weights, and the
// running reward across generations exactly as a real exec handover would.
func Simulate(opts SimOptions) ([]GenerationResult, error) {
	if opts.MaxTicksPerGeneration == 0 {
		opts.MaxTicksPerGeneration = 200
	}
	if err := confblock.EnsureFile(opts.ResourcePath, confblock.Default()); err != nil {
		return nil, err
	}

	// The verify stage wants a regular executable file; a stub script serves.
	target := opts.ResourcePath + ".target"
	if err := os.WriteFile(target, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		return nil, fmt.Errorf("create stub target: %w", err)
	}

	// Forcing mutation means pinning the trigger gate AND starting from the
	// clamp ceiling so the per-field gates essentially always fire.
	if opts.ForceMutation {
		cfg, err := confblock.LoadFile(opts.ResourcePath)
		if err != nil {
			return nil, err
		}
		cfg.MutationProb = confblock.MaxMutationProb
		if err := confblock.RewriteFile(opts.ResourcePath, cfg); err != nil {
			return nil, err
		}
	}

	results := make([]GenerationResult, 0, opts.Generations)
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	for g := 0; g < opts.Generations; g++ {
		res, err := runGeneration(opts, target, g, seed+int64(g))
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func runGeneration(opts SimOptions, target string, g int, seed int64) (GenerationResult, error) {
	store, err := state.Open(opts.StatePath)
	if err != nil {
		return GenerationResult{}, fmt.Errorf("generation %d: %w", g, err)
	}
	defer store.Close()

	cfgBefore, err := confblock.LoadFile(opts.ResourcePath)
	if err != nil {
		return GenerationResult{}, fmt.Errorf("generation %d: %w", g, err)
	}
	startIter := store.Iteration()

	ctrlOpts := controller.Options{
		ResourcePath: opts.ResourcePath,
		TargetPath:   target,
		Defaults:     confblock.Default(),
		Policy:       mutate.NewPolicy(seed),
		Store:        store,
		Builder:      fakeBuilder{fail: opts.FailBuild},
		Replacer:     reportReplacer{},
		Log:          opts.Log,
	}
	if opts.ForceMutation {
		ctrlOpts.Gate = func() float64 { return 0 }
	}

	loop := orchestrator.New(orchestrator.Options{
		Store:        store,
		Oracle:       reward.NewLocal(),
		Controller:   controller.New(ctrlOpts, seed),
		ResourcePath: opts.ResourcePath,
		Period:       0,
		MaxTicks:     opts.MaxTicksPerGeneration,
	})

	outcome, err := loop.Run(context.Background())
	if err != nil {
		return GenerationResult{}, fmt.Errorf("generation %d: %w", g, err)
	}

	cfgAfter, err := confblock.LoadFile(opts.ResourcePath)
	if err != nil {
		return GenerationResult{}, fmt.Errorf("generation %d: %w", g, err)
	}

	res := GenerationResult{
		Generation:     g,
		StartIteration: startIter,
		EndIteration:   store.Iteration(),
		ConfigBefore:   cfgBefore,
		ConfigAfter:    cfgAfter,
		Outcome:        outcome,
	}
	if err := store.Flush(); err != nil {
		return res, fmt.Errorf("generation %d: %w", g, err)
	}
	return res, nil
}

// #endregion simulate
