// Package orchestrator drives the fixed-period tick loop: perceive durable
// state, predict, score, update the learner, persist, and hand the
// replacement trigger to the controller.
package orchestrator

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/danielpatrickdp/metamorph/internal/confblock"
	"github.com/danielpatrickdp/metamorph/internal/controller"
	"github.com/danielpatrickdp/metamorph/internal/learner"
	"github.com/danielpatrickdp/metamorph/internal/reward"
	"github.com/danielpatrickdp/metamorph/internal/state"
)

// #region options
// Options configures the loop.
type Options struct {
	Store        *state.Store
	Oracle       reward.Oracle
	Controller   *controller.Controller
	ResourcePath string

	// Period is the fixed tick period.
	Period time.Duration

	// MaxTicks stops the loop after N ticks; 0 means run until ctx is done
	// or the process image is replaced. Used by replay and tests.
	MaxTicks int
}

// #endregion options

// #region loop
type Loop struct {
	opts Options
}

// New creates a loop.
func New(opts Options) *Loop {
	return &Loop{opts: opts}
}

// Run drives ticks until ctx is done, MaxTicks is reached, or the controller
// reports a handover. The returned outcome is Replaced only under a
// simulated replacer; with the real one a successful replacement never
// returns at all. A non-nil error alongside KeepRunning is the fatal
// replace-call failure.
func (l *Loop) Run(ctx context.Context) (controller.Outcome, error) {
	cfg := l.loadConfig()

	for ticks := 0; l.opts.MaxTicks == 0 || ticks < l.opts.MaxTicks; ticks++ {
		rec := l.opts.Store.Snapshot()

		// Derive the tick input from the iteration count: one period of a
		// sine wave every 10 ticks.
		x := math.Sin(2 * math.Pi * float64(rec.Iteration%10) / 10)
		pred := learner.Predict(rec.Weight, rec.Bias, x)

		r, err := l.opts.Oracle.Score(ctx, rec.Iteration, x, pred)
		if err != nil {
			log.Printf("[TICK] oracle error, reward 0 this tick: %v", err)
			r = 0
		}

		res := learner.Update(rec.Weight, rec.Bias, rec.RunningReward, x, r, cfg.LearningRate)
		l.opts.Store.SetWeight(res.Weight)
		l.opts.Store.SetBias(res.Bias)
		l.opts.Store.SetRunningReward(res.RunningReward)
		l.opts.Store.SetScratch(fmt.Sprintf("iter=%d x=%.3f pred=%.3f reward=%.3f err=%.3f",
			rec.Iteration, x, pred, r, res.Error))

		if err := l.opts.Store.Flush(); err != nil {
			log.Printf("[TICK] flush failed: %v", err)
		}

		log.Printf("[TICK] iter=%d x=%.3f pred=%.3f reward=%.3f avg=%.4f w=%.4f b=%.4f",
			rec.Iteration, x, pred, r, res.RunningReward, res.Weight, res.Bias)

		if rec.Iteration != 0 && rec.Iteration%uint64(cfg.RecompileInterval) == 0 {
			outcome, err := l.opts.Controller.Attempt(ctx, cfg, rec.Iteration)
			if err != nil {
				return outcome, err
			}
			if outcome == controller.Replaced {
				return outcome, nil
			}
			// A mutation may have been staged even though the attempt fell
			// back to running; pick up whatever the resource now holds.
			cfg = l.loadConfig()
		}

		l.opts.Store.SetIteration(rec.Iteration + 1)
		if err := l.opts.Store.Flush(); err != nil {
			log.Printf("[TICK] flush failed: %v", err)
		}

		select {
		case <-ctx.Done():
			return controller.KeepRunning, ctx.Err()
		case <-time.After(l.opts.Period):
		}
	}
	return controller.KeepRunning, nil
}

func (l *Loop) loadConfig() confblock.Config {
	cfg, err := confblock.LoadFile(l.opts.ResourcePath)
	if err != nil {
		log.Printf("[TICK] config load failed, using defaults: %v", err)
		return confblock.Default()
	}
	return cfg
}

// #endregion loop
