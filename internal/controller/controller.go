// Package controller sequences the self-replacement lifecycle:
// trigger check → mutate config → rebuild → verify → flush → replace.
// Every stage short of the final exec falls back to keep-running on failure.
package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/metamorph/internal/confblock"
	"github.com/danielpatrickdp/metamorph/internal/mutate"
	"github.com/danielpatrickdp/metamorph/internal/provenance"
	"github.com/danielpatrickdp/metamorph/internal/state"
)

// #region options
// Options wires the controller's collaborators.
type Options struct {
	// ResourcePath is the editable config resource.
	ResourcePath string

	// TargetPath is the executable to verify and exec after a rebuild,
	// normally the running binary's own resolved path.
	TargetPath string

	Defaults confblock.Config
	Policy   *mutate.Policy
	Store    *state.Store
	Builder  Builder
	Replacer Replacer

	// Log may be nil; attempts then go unrecorded.
	Log *provenance.Store

	// Gate overrides the trigger's uniform draw. Nil means the controller's
	// own seeded RNG; replay pins it to force or suppress mutation.
	Gate func() float64
}

// #endregion options

// #region controller
type Controller struct {
	opts Options
	rng  *rand.Rand
}

// New creates a controller. seed 0 means seed from the clock.
func New(opts Options, seed int64) *Controller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Controller{opts: opts, rng: rand.New(rand.NewSource(seed))}
}

// #endregion controller

// #region attempt
// Attempt runs the trigger check for this tick and, if it fires, the full
// mutate → build → verify → replace sequence. A non-nil error is fatal: it
// means the replacement exec itself failed after the point of no return.
// Any earlier failure logs, records provenance, and returns KeepRunning.
func (c *Controller) Attempt(ctx context.Context, cfg confblock.Config, iteration uint64) (Outcome, error) {
	if iteration == 0 || cfg.RecompileInterval < 1 || iteration%uint64(cfg.RecompileInterval) != 0 {
		return KeepRunning, nil
	}

	genID := uuid.New().String()

	draw := c.gate()
	if draw >= cfg.MutationProb {
		c.record(genID, iteration, provenance.StageTrigger, provenance.DecisionSkip,
			fmt.Sprintf("gate draw %.4f >= prob %.4f", draw, cfg.MutationProb), nil)
		return KeepRunning, nil
	}

	// MUTATING: propose a perturbed config and rewrite the resource region.
	next := c.opts.Policy.Propose(c.opts.Defaults, cfg, cfg.MutationProb)
	if err := confblock.RewriteFile(c.opts.ResourcePath, next); err != nil {
		log.Printf("[CTRL] mutate failed, keep running: %v", err)
		c.record(genID, iteration, provenance.StageMutate, provenance.DecisionAbort, err.Error(), nil)
		return KeepRunning, nil
	}

	// BUILDING: the resource now holds the mutated config. A failed build
	// leaves it staged for the next attempt; it is not repaired.
	if err := c.opts.Builder.Build(ctx); err != nil {
		log.Printf("[CTRL] build failed, keep running: %v", err)
		c.record(genID, iteration, provenance.StageBuild, provenance.DecisionAbort, err.Error(), &next)
		return KeepRunning, nil
	}

	// VERIFYING: the rebuilt target must exist and be executable.
	if err := verifyExecutable(c.opts.TargetPath); err != nil {
		log.Printf("[CTRL] verify failed, keep running: %v", err)
		c.record(genID, iteration, provenance.StageVerify, provenance.DecisionAbort, err.Error(), &next)
		return KeepRunning, nil
	}

	// The handover ends this tick: advance the iteration now so the next
	// generation resumes past this count instead of re-triggering on it,
	// then flush before the image goes away. An unflushable store is not
	// safe to exec over.
	c.opts.Store.SetIteration(iteration + 1)
	if err := c.opts.Store.Flush(); err != nil {
		log.Printf("[CTRL] state flush failed, keep running: %v", err)
		c.record(genID, iteration, provenance.StageReplace, provenance.DecisionAbort, err.Error(), &next)
		return KeepRunning, nil
	}

	// REPLACING: record the handover first; on success this call never
	// returns and the new generation starts fresh.
	c.record(genID, iteration, provenance.StageReplace, provenance.DecisionReplace,
		"exec "+c.opts.TargetPath, &next)
	log.Printf("[CTRL] replacing process image with %s (generation %s)", c.opts.TargetPath, genID)

	if err := c.opts.Replacer.Replace(c.opts.TargetPath); err != nil {
		return KeepRunning, fmt.Errorf("replace process image: %w", err)
	}
	return Replaced, nil
}

func (c *Controller) gate() float64 {
	if c.opts.Gate != nil {
		return c.opts.Gate()
	}
	return c.rng.Float64()
}

// #endregion attempt

// #region verify
// verifyExecutable checks that path is a regular file with an execute bit.
func verifyExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("target %s is not a regular file", path)
	}
	if info.Mode().Perm()&0o111 == 0 {
		return fmt.Errorf("target %s is not executable", path)
	}
	return nil
}

// #endregion verify

// #region record
func (c *Controller) record(genID string, iteration uint64, stage, decision, reason string, cfg *confblock.Config) {
	var configJSON string
	if cfg != nil {
		if b, err := json.Marshal(cfg); err == nil {
			configJSON = string(b)
		}
	}
	err := c.opts.Log.LogAttempt(provenance.AttemptEntry{
		GenerationID: genID,
		Iteration:    iteration,
		Stage:        stage,
		Decision:     decision,
		Reason:       reason,
		ConfigJSON:   configJSON,
	})
	if err != nil {
		log.Printf("[CTRL] provenance log failed: %v", err)
	}
}

// #endregion record
