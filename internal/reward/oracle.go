// Package reward supplies the scalar-reward oracle that drives the learner.
package reward

import "context"

// #region oracle
// Oracle scores one tick's prediction. Implementations must treat the call as
// read-only: the daemon owns all durable state.
type Oracle interface {
	Score(ctx context.Context, iteration uint64, input, prediction float64) (float64, error)
}

// #endregion oracle

// #region local
// Local rewards predictions that track a scaled copy of the input signal.
// Reward is 1 at a perfect match and falls off quadratically, floored at -1.
type Local struct {
	Scale float64
}

// NewLocal returns the default local oracle.
func NewLocal() Local {
	return Local{Scale: 2}
}

func (l Local) Score(_ context.Context, _ uint64, input, prediction float64) (float64, error) {
	target := l.Scale * input
	d := prediction - target
	r := 1 - d*d
	if r < -1 {
		r = -1
	}
	return r, nil
}

// #endregion local
