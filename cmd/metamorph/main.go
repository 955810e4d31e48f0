package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"time"

	"golang.org/x/sys/unix"

	"github.com/danielpatrickdp/metamorph/internal/confblock"
	"github.com/danielpatrickdp/metamorph/internal/controller"
	"github.com/danielpatrickdp/metamorph/internal/mutate"
	"github.com/danielpatrickdp/metamorph/internal/orchestrator"
	"github.com/danielpatrickdp/metamorph/internal/provenance"
	"github.com/danielpatrickdp/metamorph/internal/reward"
	"github.com/danielpatrickdp/metamorph/internal/state"
)

// #region main
func main() {
	statePath := envOr("METAMORPH_STATE", "metamorph.state")
	resourcePath := envOr("METAMORPH_RESOURCE", "metamorph.conf")
	dbPath := envOr("METAMORPH_DB", "metamorph.db")
	buildCmd := envOr("METAMORPH_BUILD_CMD", "make")
	rewardAddr := os.Getenv("METAMORPH_REWARD_ADDR")
	period := envDuration("METAMORPH_TICK", 500*time.Millisecond)

	// Durable state is the one thing the daemon cannot run without.
	store, err := state.Open(statePath)
	if err != nil {
		log.Fatalf("open state store: %v", err)
	}
	defer store.Close()

	if err := confblock.EnsureFile(resourcePath, confblock.Default()); err != nil {
		log.Fatalf("ensure config resource: %v", err)
	}

	// The attempt log is diagnostic; run without it if the DB won't open.
	attempts, err := provenance.NewStore(dbPath)
	if err != nil {
		log.Printf("provenance db unavailable, attempts unrecorded: %v", err)
		attempts = nil
	}
	defer attempts.Close()

	var oracle reward.Oracle = reward.NewLocal()
	if rewardAddr != "" {
		client, err := reward.NewClient(rewardAddr)
		if err != nil {
			log.Fatalf("connect reward service at %s: %v", rewardAddr, err)
		}
		defer client.Close()
		oracle = client
	}

	self, err := os.Executable()
	if err != nil {
		log.Fatalf("resolve own executable: %v", err)
	}

	ctrl := controller.New(controller.Options{
		ResourcePath: resourcePath,
		TargetPath:   self,
		Defaults:     confblock.Default(),
		Policy:       mutate.NewPolicy(0),
		Store:        store,
		Builder:      controller.CommandBuilder{Command: buildCmd},
		Replacer:     controller.ExecReplacer{},
		Log:          attempts,
	}, 0)

	loop := orchestrator.New(orchestrator.Options{
		Store:        store,
		Oracle:       oracle,
		Controller:   ctrl,
		ResourcePath: resourcePath,
		Period:       period,
	})

	rec := store.Snapshot()
	log.Printf("[MAIN] metamorph up: iter=%d w=%.4f b=%.4f state=%s resource=%s",
		rec.Iteration, rec.Weight, rec.Bias, statePath, resourcePath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, unix.SIGTERM)
	defer stop()

	outcome, err := loop.Run(ctx)
	if err != nil && ctx.Err() == nil {
		// Only the replacement exec itself failing lands here; the process
		// has already torn down for handover and cannot resume.
		log.Fatalf("[MAIN] %v", err)
	}
	log.Printf("[MAIN] loop stopped: outcome=%s", outcome)
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return fallback
}

// #endregion helpers
