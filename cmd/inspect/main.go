package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/metamorph/internal/confblock"
	"github.com/danielpatrickdp/metamorph/internal/provenance"
	"github.com/danielpatrickdp/metamorph/internal/state"
)

// #region main

func main() {
	statePath := flag.String("state", "metamorph.state", "path to the durable state file")
	resourcePath := flag.String("resource", "", "path to the config resource (optional)")
	dbPath := flag.String("db", "", "path to the provenance db (optional)")
	last := flag.Int("last", 20, "show N most recent replacement attempts")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	flag.Parse()

	report, err := buildReport(*statePath, *resourcePath, *dbPath, *last)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}
	printReport(report)
}

// #endregion main

// #region report

type report struct {
	State    state.Record              `json:"state"`
	Config   *confblock.Config         `json:"config,omitempty"`
	Attempts []provenance.AttemptEntry `json:"attempts,omitempty"`
}

func buildReport(statePath, resourcePath, dbPath string, last int) (report, error) {
	// Read-only: the daemon's Open reinitializes an unreadable record, and an
	// inspector must not do that to the file it is diagnosing.
	rec, err := state.ReadRecord(statePath)
	if err != nil {
		return report{}, err
	}

	rep := report{State: rec}

	if resourcePath != "" {
		cfg, err := confblock.LoadFile(resourcePath)
		if err != nil {
			return report{}, err
		}
		rep.Config = &cfg
	}

	if dbPath != "" {
		db, err := provenance.NewStore(dbPath)
		if err != nil {
			return report{}, err
		}
		defer db.Close()
		rep.Attempts, err = db.Recent(last)
		if err != nil {
			return report{}, err
		}
	}
	return rep, nil
}

func printReport(rep report) {
	fmt.Printf("iteration       %d\n", rep.State.Iteration)
	fmt.Printf("weight          %.6f\n", rep.State.Weight)
	fmt.Printf("bias            %.6f\n", rep.State.Bias)
	fmt.Printf("running reward  %.6f\n", rep.State.RunningReward)
	fmt.Printf("scratch         %s\n", rep.State.Scratch)

	if rep.Config != nil {
		fmt.Printf("\nlearning rate      %.6f\n", rep.Config.LearningRate)
		fmt.Printf("mutation prob      %.6f\n", rep.Config.MutationProb)
		fmt.Printf("recompile interval %d\n", rep.Config.RecompileInterval)
	}

	if len(rep.Attempts) > 0 {
		fmt.Printf("\n%-10s %-8s %-8s %s\n", "ITER", "STAGE", "DECISION", "REASON")
		for _, a := range rep.Attempts {
			fmt.Printf("%-10d %-8s %-8s %s\n", a.Iteration, a.Stage, a.Decision, a.Reason)
		}
	}
}

// #endregion report
