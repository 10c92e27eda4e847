package metrics

import "fmt"

// Period is the sampling frequency of a return series. It selects both the
// annualization factor and the calendar bucketing used by AggregateReturns.
type Period string

const (
	PeriodDay       Period = "day"
	PeriodWeekly    Period = "weekly"
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodYearly    Period = "yearly"
)

// AnnualizationFactor returns the number of sampling periods per year:
// 252 trading days, 52 weeks, 12 months, 4 quarters, or 1 year.
func (p Period) AnnualizationFactor() (float64, error) {
	switch p {
	case PeriodDay:
		return 252, nil
	case PeriodWeekly:
		return 52, nil
	case PeriodMonthly:
		return 12, nil
	case PeriodQuarterly:
		return 4, nil
	case PeriodYearly:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: unknown period %q", ErrUnsupportedAggregation, string(p))
	}
}
