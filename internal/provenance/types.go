package provenance

import "time"

// #region stages
// Stage names match the controller's state machine.
const (
	StageTrigger = "trigger"
	StageMutate  = "mutate"
	StageBuild   = "build"
	StageVerify  = "verify"
	StageReplace = "replace"
)

// Decisions recorded per attempt.
const (
	DecisionSkip    = "skip"    // trigger gate did not fire
	DecisionAbort   = "abort"   // a stage failed, fell back to running
	DecisionReplace = "replace" // handing the process image over
)

// #endregion stages

// #region attempt-entry
// AttemptEntry is one row of the replacement attempt log.
type AttemptEntry struct {
	GenerationID string
	Iteration    uint64
	Stage        string
	Decision     string
	Reason       string
	ConfigJSON   string
	CreatedAt    time.Time
}

// #endregion attempt-entry
