package confblock

// #region markers
// BeginMarker and EndMarker delimit the machine-rewritable region inside the
// config resource. The markers themselves are never rewritten, so every
// generation can still locate the region.
const (
	BeginMarker = "# BEGIN METAMORPH CONFIG"
	EndMarker   = "# END METAMORPH CONFIG"
)

// #endregion markers

// #region keys
const (
	KeyLearningRate      = "LEARNING_RATE"
	KeyMutationProb      = "MUTATION_PROB"
	KeyRecompileInterval = "RECOMPILE_INTERVAL"
)

// #endregion keys

// #region bounds
const (
	// MinLearningRate keeps the learning rate strictly positive even after
	// rounding to the 6-decimal written form.
	MinLearningRate = 1e-6

	MinMutationProb = 0.01
	MaxMutationProb = 0.99

	MinRecompileInterval = 1
)

// #endregion bounds

// #region config
// Config is the typed view of the rewritable region. Each field falls back to
// its own default independently when missing, unparseable, or out of range.
type Config struct {
	LearningRate      float64
	MutationProb      float64
	RecompileInterval int
}

// Default returns the per-field defaults used whenever a key is absent or bad.
func Default() Config {
	return Config{
		LearningRate:      0.05,
		MutationProb:      0.5,
		RecompileInterval: 10,
	}
}

// #endregion config
