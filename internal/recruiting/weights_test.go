package recruiting

import (
	"errors"
	"testing"
)

func TestDefaultWeightsAreValid(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights must validate: %v", err)
	}
	if sum := DefaultWeights().Sum(); sum != WeightTotal {
		t.Fatalf("expected default weights to sum to %d, got %d", WeightTotal, sum)
	}
}

func TestWeightsValidate(t *testing.T) {
	cases := []struct {
		name    string
		weights Weights
		wantSum int
	}{
		{"sum 99", Weights{Skills: 39, Location: 25, Experience: 15, Title: 10, Education: 5, Industry: 5}, 99},
		{"sum 101", Weights{Skills: 41, Location: 25, Experience: 15, Title: 10, Education: 5, Industry: 5}, 101},
		{"all zero", Weights{}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.weights.Validate()
			if err == nil {
				t.Fatalf("expected an error for weights %+v", tc.weights)
			}

			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected a ConfigurationError, got %T: %v", err, err)
			}
			if cfgErr.Sum != tc.wantSum {
				t.Fatalf("expected reported sum %d, got %d", tc.wantSum, cfgErr.Sum)
			}
		})
	}
}

func TestWeightsValidateRejectsOutOfRangeFields(t *testing.T) {
	negative := Weights{Skills: -10, Location: 110}
	err := negative.Validate()
	if err == nil {
		t.Fatalf("expected an error for a negative weight")
	}

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected a ConfigurationError, got %T: %v", err, err)
	}
	if cfgErr.Detail == "" {
		t.Fatalf("expected the offending field to be named")
	}
}

func TestWeightsSingleCriterionIsValid(t *testing.T) {
	if err := (Weights{Skills: 100}).Validate(); err != nil {
		t.Fatalf("a single criterion carrying all the weight is legal: %v", err)
	}
}
