package metrics

import "errors"

var (
	// ErrUnsupportedAggregation is returned for aggregation periods that have
	// no bucketing rule (weekly, quarterly, day) or are unknown entirely.
	ErrUnsupportedAggregation = errors.New("unsupported aggregation period")

	// ErrUndefinedResult is returned when a ratio's denominator is zero, e.g.
	// Calmar with no drawdown or Sharpe on a flat return series.
	ErrUndefinedResult = errors.New("undefined result")
)
