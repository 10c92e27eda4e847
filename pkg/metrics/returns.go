package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/aristath/metrics/pkg/formulas"
	"github.com/aristath/metrics/pkg/timeseries"
)

// SimpleReturns derives the per-row simple return from the close column:
// return[t] = close[t]/close[t-1] - 1. The first row has no prior price and
// holds NaN. A close of zero anywhere before the final row leaves every
// subsequent return undefined (division by zero) and fails with
// ErrUndefinedResult.
func (e *Engine) SimpleReturns() (*timeseries.Table, error) {
	closes, err := e.table.Column(timeseries.ColumnClose)
	if err != nil {
		return nil, err
	}

	for i, c := range closes {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: non-numeric close price at row %d", timeseries.ErrInvalidInput, i)
		}
		if c == 0 && i < len(closes)-1 {
			return nil, fmt.Errorf("%w: return after zero close at row %d", ErrUndefinedResult, i)
		}
	}

	returns := make([]float64, 0, len(closes))
	returns = append(returns, math.NaN())
	returns = append(returns, formulas.CalculateReturns(closes)...)

	e.log.Debug().Int("rows", len(returns)).Msg("Computed simple returns")
	return e.table.WithColumn(timeseries.ColumnReturn, returns)
}

// CumulativeReturns derives the growth-of-one-unit-invested trajectory: a
// running product of (1 + return). The first row's undefined return
// contributes a factor of 1, so the series starts at the 1.0 baseline.
func (e *Engine) CumulativeReturns(returns *timeseries.Table) (*timeseries.Table, error) {
	values, err := returns.Column(timeseries.ColumnReturn)
	if err != nil {
		return nil, err
	}

	cumulative := make([]float64, len(values))
	growth := 1.0
	for i, r := range values {
		if !math.IsNaN(r) {
			growth *= 1 + r
		}
		cumulative[i] = growth
	}

	return returns.WithColumn(timeseries.ColumnCumulativeReturn, cumulative)
}

// CumulativeReturnFinal reports the compounded growth factor of the whole
// series: the last defined value of the cumulative return column.
func (e *Engine) CumulativeReturnFinal(cumulative *timeseries.Table) (float64, error) {
	values, err := cumulative.Column(timeseries.ColumnCumulativeReturn)
	if err != nil {
		return 0, err
	}

	for i := len(values) - 1; i >= 0; i-- {
		if !math.IsNaN(values[i]) {
			return values[i], nil
		}
	}
	return 0, fmt.Errorf("%w: cumulative return series has no defined values", ErrUndefinedResult)
}

// Bucket is one calendar group of a return series, keyed "2006-01" for
// monthly aggregation or "2006" for yearly.
type Bucket struct {
	Key     string
	Dates   []time.Time
	Returns []float64
}

// AggregateReturns buckets the price table's simple returns by calendar
// period, ordered by first occurrence. Only monthly and yearly bucketing
// rules exist; every other period fails with ErrUnsupportedAggregation.
func (e *Engine) AggregateReturns(period Period) ([]Bucket, error) {
	var layout string
	switch period {
	case PeriodMonthly:
		layout = "2006-01"
	case PeriodYearly:
		layout = "2006"
	default:
		return nil, fmt.Errorf("%w: no bucketing rule for %q", ErrUnsupportedAggregation, string(period))
	}

	returns, err := e.SimpleReturns()
	if err != nil {
		return nil, err
	}

	dates := returns.Dates()
	values, err := returns.Column(timeseries.ColumnReturn)
	if err != nil {
		return nil, err
	}

	var buckets []Bucket
	index := make(map[string]int)
	for i, d := range dates {
		key := d.Format(layout)
		at, ok := index[key]
		if !ok {
			at = len(buckets)
			index[key] = at
			buckets = append(buckets, Bucket{Key: key})
		}
		buckets[at].Dates = append(buckets[at].Dates, d)
		buckets[at].Returns = append(buckets[at].Returns, values[i])
	}

	e.log.Debug().
		Str("period", string(period)).
		Int("buckets", len(buckets)).
		Msg("Aggregated returns")
	return buckets, nil
}
