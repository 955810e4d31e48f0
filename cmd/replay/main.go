package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielpatrickdp/metamorph/internal/replay"
)

// #region main

func main() {
	dir := flag.String("dir", "", "working directory for state/resource files (default: temp dir)")
	generations := flag.Int("generations", 3, "number of generations to simulate")
	ticks := flag.Int("ticks", 200, "max ticks per generation")
	seed := flag.Int64("seed", 1, "mutation RNG seed")
	failBuild := flag.Bool("fail-build", false, "make every build fail (staged-config path)")
	jsonOut := flag.Bool("json", false, "output as JSON instead of a table")
	flag.Parse()

	workDir := *dir
	if workDir == "" {
		tmp, err := os.MkdirTemp("", "metamorph-replay-*")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		defer os.RemoveAll(tmp)
		workDir = tmp
	}

	results, err := replay.Simulate(replay.SimOptions{
		StatePath:             filepath.Join(workDir, "metamorph.state"),
		ResourcePath:          filepath.Join(workDir, "metamorph.conf"),
		Generations:           *generations,
		MaxTicksPerGeneration: *ticks,
		Seed:                  *seed,
		ForceMutation:         true,
		FailBuild:             *failBuild,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("%-4s %-6s %-6s %-9s %-10s %-9s %s\n",
		"GEN", "START", "END", "OUTCOME", "LR", "PROB", "INTERVAL")
	for _, r := range results {
		fmt.Printf("%-4d %-6d %-6d %-9s %-10.6f %-9.6f %-9d\n",
			r.Generation, r.StartIteration, r.EndIteration, r.Outcome,
			r.ConfigAfter.LearningRate, r.ConfigAfter.MutationProb, r.ConfigAfter.RecompileInterval)
	}
}

// #endregion main
