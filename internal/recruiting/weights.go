package recruiting

import "fmt"

// WeightTotal is the required sum of all six criterion weights.
const WeightTotal = 100

// Weights holds the per-vacancy importance of each matching criterion.
// The six values must each be in [0,100] and sum to exactly 100; that is a
// data-entry contract enforced at the vacancy boundary, never renormalized
// by the scoring layer.
type Weights struct {
	Skills     int `json:"skills"`
	Location   int `json:"location"`
	Experience int `json:"experience"`
	Title      int `json:"title"`
	Education  int `json:"education"`
	Industry   int `json:"industry"`
}

// DefaultWeights returns the standard agency split used when a vacancy
// carries no explicit weighting.
func DefaultWeights() Weights {
	return Weights{
		Skills:     40,
		Location:   25,
		Experience: 15,
		Title:      10,
		Education:  5,
		Industry:   5,
	}
}

// Sum returns the total of all six weights.
func (w Weights) Sum() int {
	return w.Skills + w.Location + w.Experience + w.Title + w.Education + w.Industry
}

// Validate checks the weight invariant and returns a *ConfigurationError
// describing the violation.
func (w Weights) Validate() error {
	for _, f := range []struct {
		name  string
		value int
	}{
		{"skills", w.Skills},
		{"location", w.Location},
		{"experience", w.Experience},
		{"title", w.Title},
		{"education", w.Education},
		{"industry", w.Industry},
	} {
		if f.value < 0 || f.value > WeightTotal {
			return &ConfigurationError{
				Sum:    w.Sum(),
				Detail: fmt.Sprintf("weight %q is %d, must be between 0 and %d", f.name, f.value, WeightTotal),
			}
		}
	}

	if sum := w.Sum(); sum != WeightTotal {
		return &ConfigurationError{Sum: sum}
	}

	return nil
}

// ConfigurationError reports vacancy weights that violate the sum-to-100
// contract. It carries the actual sum so the problem can be corrected at the
// data-entry layer.
type ConfigurationError struct {
	Sum    int
	Detail string
}

func (e *ConfigurationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("invalid vacancy weights: %s", e.Detail)
	}
	return fmt.Sprintf("invalid vacancy weights: must sum to %d, got %d", WeightTotal, e.Sum)
}
