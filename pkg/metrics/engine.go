// Package metrics computes financial performance statistics (returns,
// drawdown, volatility, risk-adjusted ratios) from a price table.
package metrics

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/aristath/metrics/pkg/timeseries"
)

// Engine computes derived series and scalar statistics from a price table.
// Every operation is a pure function of its inputs; the engine only carries
// the source table and a logger.
type Engine struct {
	table *timeseries.Table
	log   zerolog.Logger
}

// NewEngine creates an engine over the given price table.
func NewEngine(table *timeseries.Table, log zerolog.Logger) *Engine {
	return &Engine{
		table: table,
		log:   log.With().Str("component", "metrics").Logger(),
	}
}

// Table returns the source price table.
func (e *Engine) Table() *timeseries.Table {
	return e.table
}

// definedReturns extracts the return column and drops undefined (NaN) cells.
func definedReturns(returns *timeseries.Table) ([]float64, error) {
	if returns == nil || returns.Len() == 0 {
		return nil, fmt.Errorf("%w: empty return series", timeseries.ErrInvalidInput)
	}

	values, err := returns.Column(timeseries.ColumnReturn)
	if err != nil {
		return nil, err
	}

	defined := make([]float64, 0, len(values))
	for _, r := range values {
		if !math.IsNaN(r) {
			defined = append(defined, r)
		}
	}
	return defined, nil
}
