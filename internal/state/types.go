package state

// #region layout
// The backing file is a single fixed-size record, mapped shared so it
// survives process replacement. All integers and floats are little-endian.
//
//	offset  size  field
//	0       8     magic
//	8       8     layout version
//	16      8     iteration
//	24      8     weight (float64 bits)
//	32      8     bias (float64 bits)
//	40      8     running reward (float64 bits)
//	48      256   scratch (NUL-padded text)
//
// Changing the layout requires bumping LayoutVersion: an unmatched
// magic/version pair is treated as absent, never as salvageable.
const (
	Magic         = 0x4d4554414d525048 // "METAMRPH"
	LayoutVersion = 1

	RecordSize  = 4096
	ScratchSize = 256

	offMagic     = 0
	offVersion   = 8
	offIteration = 16
	offWeight    = 24
	offBias      = 32
	offRunReward = 40
	offScratch   = 48
)

// #endregion layout

// #region defaults
const (
	DefaultWeight = 0.1
	DefaultBias   = 0.0
)

// #endregion defaults

// #region record
// Record is a point-in-time copy of the durable fields. The store provides no
// multi-field atomicity mid-tick; external readers must tolerate a snapshot
// taken between field writes.
type Record struct {
	Iteration     uint64
	Weight        float64
	Bias          float64
	RunningReward float64
	Scratch       string
}

// #endregion record
