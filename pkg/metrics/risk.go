package metrics

import (
	"fmt"
	"math"

	"github.com/aristath/metrics/pkg/formulas"
	"github.com/aristath/metrics/pkg/timeseries"
)

// MaxDrawdown reports the worst decline from a running peak of the cumulative
// return series, as a fraction ≤ 0: min(cumulative/peak - 1) over all rows.
func (e *Engine) MaxDrawdown(returns *timeseries.Table) (float64, error) {
	cumulative, err := e.CumulativeReturns(returns)
	if err != nil {
		return 0, err
	}

	values, err := cumulative.Column(timeseries.ColumnCumulativeReturn)
	if err != nil {
		return 0, err
	}

	peak := math.Inf(-1)
	worst := 0.0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		peak = math.Max(peak, v)
		if peak > 0 {
			drawdown := v/peak - 1
			if drawdown < worst {
				worst = drawdown
			}
		}
	}

	return worst, nil
}

// CompoundAnnualGrowthRate is the constant annual rate reproducing the total
// compounded return: G^(1/years) - 1, where G is the final growth factor and
// years = rows / annualization factor.
func (e *Engine) CompoundAnnualGrowthRate(returns *timeseries.Table, period Period) (float64, error) {
	factor, err := period.AnnualizationFactor()
	if err != nil {
		return 0, err
	}
	if returns == nil || returns.Len() == 0 {
		return 0, fmt.Errorf("%w: empty return series", timeseries.ErrInvalidInput)
	}

	cumulative, err := e.CumulativeReturns(returns)
	if err != nil {
		return 0, err
	}
	ending, err := e.CumulativeReturnFinal(cumulative)
	if err != nil {
		return 0, err
	}

	years := float64(returns.Len()) / factor
	if years == 0 {
		return 0, fmt.Errorf("%w: zero-length observation span", ErrUndefinedResult)
	}

	return math.Pow(ending, 1/years) - 1, nil
}

// AnnualVolatility is the sample standard deviation of the return column
// scaled by sqrt of the annualization factor. Undefined (NaN) returns are
// excluded; a series with fewer than two defined returns has zero volatility.
func (e *Engine) AnnualVolatility(returns *timeseries.Table, period Period) (float64, error) {
	factor, err := period.AnnualizationFactor()
	if err != nil {
		return 0, err
	}

	defined, err := definedReturns(returns)
	if err != nil {
		return 0, err
	}
	if len(defined) < 2 {
		return 0, nil
	}

	return formulas.AnnualizedVolatility(defined, factor), nil
}

// CalmarRatio is CAGR divided by the magnitude of the maximum drawdown.
func (e *Engine) CalmarRatio(returns *timeseries.Table, period Period) (float64, error) {
	cagr, err := e.CompoundAnnualGrowthRate(returns, period)
	if err != nil {
		return 0, err
	}

	drawdown, err := e.MaxDrawdown(returns)
	if err != nil {
		return 0, err
	}
	if drawdown == 0 {
		return 0, fmt.Errorf("%w: calmar ratio with zero drawdown", ErrUndefinedResult)
	}

	return cagr / math.Abs(drawdown), nil
}

// SharpeRatio is the annualized excess return per unit of total volatility:
// (mean(r) - rf) / stddev(r) * sqrt(annualization factor).
func (e *Engine) SharpeRatio(returns *timeseries.Table, riskFreeRate float64, period Period) (float64, error) {
	factor, err := period.AnnualizationFactor()
	if err != nil {
		return 0, err
	}

	defined, err := definedReturns(returns)
	if err != nil {
		return 0, err
	}

	volatility := formulas.StdDev(defined)
	if volatility == 0 {
		return 0, fmt.Errorf("%w: sharpe ratio with zero volatility", ErrUndefinedResult)
	}

	return (formulas.Mean(defined) - riskFreeRate) / volatility * math.Sqrt(factor), nil
}

// SortinoRatio is the annualized excess return per unit of downside
// deviation, penalizing only returns below the risk-free rate.
func (e *Engine) SortinoRatio(returns *timeseries.Table, riskFreeRate float64, period Period) (float64, error) {
	factor, err := period.AnnualizationFactor()
	if err != nil {
		return 0, err
	}

	defined, err := definedReturns(returns)
	if err != nil {
		return 0, err
	}

	downside := formulas.DownsideDeviation(defined, riskFreeRate)
	if downside == 0 {
		return 0, fmt.Errorf("%w: sortino ratio with no downside returns", ErrUndefinedResult)
	}

	return (formulas.Mean(defined) - riskFreeRate) / downside * math.Sqrt(factor), nil
}

// OmegaRatio is the probability-weighted gain/loss ratio around the
// risk-free threshold: sum of gains above it over sum of losses below it.
func (e *Engine) OmegaRatio(returns *timeseries.Table, riskFreeRate float64) (float64, error) {
	defined, err := definedReturns(returns)
	if err != nil {
		return 0, err
	}

	var gains, losses float64
	for _, r := range defined {
		if r > riskFreeRate {
			gains += r - riskFreeRate
		} else {
			losses += riskFreeRate - r
		}
	}
	if losses == 0 {
		return 0, fmt.Errorf("%w: omega ratio with zero loss mass", ErrUndefinedResult)
	}

	return gains / losses, nil
}

// ValueAtRisk is the historical VaR of the return series at the given
// confidence level, e.g. 0.95 for the worst 5% threshold.
func (e *Engine) ValueAtRisk(returns *timeseries.Table, confidence float64) (float64, error) {
	defined, err := checkConfidence(returns, confidence)
	if err != nil {
		return 0, err
	}
	return formulas.ValueAtRisk(defined, confidence), nil
}

// ConditionalValueAtRisk is the historical CVaR: the mean return within the
// tail at or below the VaR threshold.
func (e *Engine) ConditionalValueAtRisk(returns *timeseries.Table, confidence float64) (float64, error) {
	defined, err := checkConfidence(returns, confidence)
	if err != nil {
		return 0, err
	}
	return formulas.CVaR(defined, confidence), nil
}

// MonteCarloCVaR is the CVaR of a normal approximation fitted to the observed
// returns and sampled numSimulations times.
func (e *Engine) MonteCarloCVaR(returns *timeseries.Table, numSimulations int, confidence float64) (float64, error) {
	defined, err := checkConfidence(returns, confidence)
	if err != nil {
		return 0, err
	}
	if numSimulations <= 0 {
		return 0, fmt.Errorf("%w: simulations must be positive, got %d", timeseries.ErrInvalidInput, numSimulations)
	}
	return formulas.MonteCarloCVaR(defined, numSimulations, confidence), nil
}

func checkConfidence(returns *timeseries.Table, confidence float64) ([]float64, error) {
	if confidence <= 0 || confidence >= 1 {
		return nil, fmt.Errorf("%w: confidence must be in (0, 1), got %v", timeseries.ErrInvalidInput, confidence)
	}
	return definedReturns(returns)
}
