// Package learner implements the one-parameter linear predictor and its
// delta-rule update. Both functions are pure; all state lives in the caller's
// durable record. Numeric overflow and NaN propagate as-is, matching the
// floating-point semantics of the update rule.
package learner

// #region predict
// Predict returns weight*x + bias.
func Predict(weight, bias, x float64) float64 {
	return weight*x + bias
}

// #endregion predict

// #region update
// Result holds the post-update parameter values.
type Result struct {
	Weight        float64
	Bias          float64
	RunningReward float64
	Error         float64
}

// Update applies one delta-rule step:
//
//	error  = reward - predict(x)
//	weight += lr * error * x
//	bias   += lr * error
//
// and folds the reward into a 0.99/0.01 exponential moving average.
func Update(weight, bias, runningReward, x, reward, lr float64) Result {
	e := reward - Predict(weight, bias, x)
	return Result{
		Weight:        weight + lr*e*x,
		Bias:          bias + lr*e,
		RunningReward: 0.99*runningReward + 0.01*reward,
		Error:         e,
	}
}

// #endregion update
