package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// CalculateReturns converts prices to percentage returns
// Returns[i] = (Price[i] - Price[i-1]) / Price[i-1]
func CalculateReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}

	return returns
}

// DownsideDeviation calculates the root-mean-square of returns below the
// threshold, measured against the threshold itself.
//
// Formula: sqrt(mean(min(r - threshold, 0)^2)) over the full series
//
// Returns 0 when no observation falls below the threshold.
func DownsideDeviation(returns []float64, threshold float64) float64 {
	if len(returns) == 0 {
		return 0
	}

	sum := 0.0
	count := 0
	for _, r := range returns {
		if r < threshold {
			diff := r - threshold
			sum += diff * diff
			count++
		}
	}
	if count == 0 {
		return 0
	}

	return math.Sqrt(sum / float64(len(returns)))
}

// AnnualizedVolatility scales a per-period standard deviation of returns to an
// annual basis.
//
// Formula: Std Dev of Period Returns × sqrt(periods per year)
func AnnualizedVolatility(returns []float64, periodsPerYear float64) float64 {
	if len(returns) == 0 {
		return 0
	}

	return StdDev(returns) * math.Sqrt(periodsPerYear)
}
