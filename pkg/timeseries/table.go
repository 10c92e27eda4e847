// Package timeseries holds the tabular data model the metrics engine operates
// on: an ordered set of date-stamped float64 columns, immutable after
// construction.
package timeseries

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Canonical column identifiers. Every derived table uses these names; callers
// referencing any other column name get ErrInvalidInput.
const (
	ColumnDate             = "date"
	ColumnClose            = "close"
	ColumnReturn           = "return"
	ColumnCumulativeReturn = "cumulative_return"
)

// ErrInvalidInput marks malformed input tables: missing required columns,
// non-numeric values where numbers are expected, or empty series.
var ErrInvalidInput = errors.New("invalid input")

// Table is an ordered sequence of date-stamped observations with named
// float64 columns. Undefined cells hold math.NaN(). Tables are never mutated
// after creation; derivations copy.
type Table struct {
	dates   []time.Time
	order   []string
	columns map[string][]float64
}

// New builds a price table from parallel date and close slices.
//
// Invariants enforced here: at least one row, strictly ascending dates, and
// finite non-negative close prices. Violations wrap ErrInvalidInput.
func New(dates []time.Time, closes []float64) (*Table, error) {
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: empty price series", ErrInvalidInput)
	}
	if len(dates) != len(closes) {
		return nil, fmt.Errorf("%w: %d dates but %d close prices", ErrInvalidInput, len(dates), len(closes))
	}

	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return nil, fmt.Errorf("%w: dates must be strictly ascending at row %d", ErrInvalidInput, i)
		}
	}

	for i, c := range closes {
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			return nil, fmt.Errorf("%w: close price at row %d is %v", ErrInvalidInput, i, c)
		}
	}

	t := &Table{
		dates:   append([]time.Time(nil), dates...),
		order:   []string{ColumnClose},
		columns: map[string][]float64{},
	}
	t.columns[ColumnClose] = append([]float64(nil), closes...)
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.dates)
}

// Dates returns a copy of the date column.
func (t *Table) Dates() []time.Time {
	return append([]time.Time(nil), t.dates...)
}

// Columns returns the numeric column names in insertion order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.order...)
}

// HasColumn reports whether a numeric column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Column returns a copy of the named numeric column.
func (t *Table) Column(name string) ([]float64, error) {
	values, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: missing column %q", ErrInvalidInput, name)
	}
	return append([]float64(nil), values...), nil
}

// WithColumn derives a new table carrying the additional column. The source
// table is left untouched. The new column must have one value per row.
func (t *Table) WithColumn(name string, values []float64) (*Table, error) {
	if len(values) != len(t.dates) {
		return nil, fmt.Errorf("%w: column %q has %d values for %d rows", ErrInvalidInput, name, len(values), len(t.dates))
	}

	derived := &Table{
		dates:   t.dates,
		order:   make([]string, 0, len(t.order)+1),
		columns: make(map[string][]float64, len(t.columns)+1),
	}
	for _, existing := range t.order {
		if existing == name {
			continue
		}
		derived.order = append(derived.order, existing)
		derived.columns[existing] = t.columns[existing]
	}
	derived.order = append(derived.order, name)
	derived.columns[name] = append([]float64(nil), values...)
	return derived, nil
}
