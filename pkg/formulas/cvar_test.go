package formulas

import (
	"math"
	"testing"
)

func TestValueAtRisk(t *testing.T) {
	tests := []struct {
		name       string
		returns    []float64
		confidence float64
		expected   float64
		tolerance  float64
	}{
		{
			name:       "empty returns",
			returns:    []float64{},
			confidence: 0.95,
			expected:   0.0,
			tolerance:  0.0,
		},
		{
			name:       "small sample worst observation",
			returns:    []float64{-0.02, -0.01, 0.01, 0.03},
			confidence: 0.95,
			expected:   -0.02, // tail of ceil(4*0.05)=1 observation
			tolerance:  0.0001,
		},
		{
			name:       "larger tail",
			returns:    []float64{-0.05, -0.04, -0.03, -0.02, 0.01, 0.02, 0.03, 0.04, 0.05, 0.06},
			confidence: 0.80,
			expected:   -0.04, // tail of ceil(10*0.2)=2 observations
			tolerance:  0.0001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValueAtRisk(tt.returns, tt.confidence)
			if math.Abs(result-tt.expected) > tt.tolerance {
				t.Errorf("ValueAtRisk() = %v, want %v (±%v)", result, tt.expected, tt.tolerance)
			}
		})
	}
}

func TestCVaR(t *testing.T) {
	tests := []struct {
		name       string
		returns    []float64
		confidence float64
		expected   float64
		tolerance  float64
	}{
		{
			name:       "empty returns",
			returns:    []float64{},
			confidence: 0.95,
			expected:   0.0,
			tolerance:  0.0,
		},
		{
			name:       "single return",
			returns:    []float64{-0.03},
			confidence: 0.95,
			expected:   -0.03,
			tolerance:  0.0,
		},
		{
			name:       "all equal returns",
			returns:    []float64{0.01, 0.01, 0.01},
			confidence: 0.95,
			expected:   0.01,
			tolerance:  0.0001,
		},
		{
			name:       "tail mean of worst two",
			returns:    []float64{-0.05, -0.04, -0.03, -0.02, 0.01, 0.02, 0.03, 0.04, 0.05, 0.06},
			confidence: 0.80,
			expected:   -0.045, // mean of {-0.05, -0.04}
			tolerance:  0.0001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CVaR(tt.returns, tt.confidence)
			if math.Abs(result-tt.expected) > tt.tolerance {
				t.Errorf("CVaR() = %v, want %v (±%v)", result, tt.expected, tt.tolerance)
			}
		})
	}
}

func TestMonteCarloCVaR(t *testing.T) {
	// Tight distribution around 1% with tiny spread: the simulated tail mean
	// must land close to the distribution mean.
	returns := []float64{0.0099, 0.01, 0.0101, 0.01, 0.0099, 0.0101}

	result := MonteCarloCVaR(returns, 20000, 0.95)
	if math.Abs(result-0.01) > 0.002 {
		t.Errorf("MonteCarloCVaR() = %v, want ~0.01 (±0.002)", result)
	}

	if got := MonteCarloCVaR(nil, 1000, 0.95); got != 0 {
		t.Errorf("MonteCarloCVaR(nil) = %v, want 0", got)
	}
	if got := MonteCarloCVaR(returns, 0, 0.95); got != 0 {
		t.Errorf("MonteCarloCVaR() with zero simulations = %v, want 0", got)
	}
}
