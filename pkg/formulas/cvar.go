package formulas

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// ValueAtRisk calculates historical Value at Risk (VaR) at the specified
// confidence level: the return at the (1-confidence) quantile of the observed
// distribution.
//
// Args:
//   - returns: Historical returns (can be negative for losses)
//   - confidence: Confidence level (e.g., 0.95 for 95%)
//
// Returns:
//   - VaR value (negative for losses)
func ValueAtRisk(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0.0
	}

	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	tailCount := tailSize(len(sorted), confidence)
	return sorted[tailCount-1]
}

// CVaR calculates Conditional Value at Risk (CVaR) at the specified confidence
// level. CVaR is the expected loss given that the loss exceeds the VaR
// threshold.
//
// Args:
//   - returns: Historical returns (can be negative for losses)
//   - confidence: Confidence level (e.g., 0.95 for 95%)
//
// Returns:
//   - CVaR value (negative for losses, positive for gains in tail)
func CVaR(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0.0
	}

	if len(returns) == 1 {
		return returns[0]
	}

	// Sort returns in ascending order (worst first)
	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)

	tailCount := tailSize(len(sorted), confidence)

	// CVaR is the average of returns in the tail
	tailReturns := sorted[:tailCount]
	sum := 0.0
	for _, r := range tailReturns {
		sum += r
	}

	return sum / float64(len(tailReturns))
}

// MonteCarloCVaR calculates CVaR from a normal approximation of the observed
// returns. The distribution is fitted on the sample mean and standard
// deviation and sampled numSimulations times; the historical CVaR of the
// simulated draws is returned. More stable than historical CVaR when the
// observed series is short.
func MonteCarloCVaR(returns []float64, numSimulations int, confidence float64) float64 {
	if len(returns) == 0 || numSimulations <= 0 {
		return 0.0
	}

	mu := Mean(returns)
	sigma := math.Max(StdDev(returns), 1e-10)

	normal := distuv.Normal{
		Mu:    mu,
		Sigma: sigma,
	}

	simulated := make([]float64, numSimulations)
	for i := range simulated {
		simulated[i] = normal.Rand()
	}

	return CVaR(simulated, confidence)
}

// tailSize returns the number of observations in the worst (1-confidence)
// fraction of a sorted sample, clamped to [1, n].
func tailSize(n int, confidence float64) int {
	tailProbability := 1.0 - confidence
	tailCount := int(math.Ceil(float64(n) * tailProbability))

	if tailCount == 0 {
		tailCount = 1
	}
	if tailCount > n {
		tailCount = n
	}
	return tailCount
}
