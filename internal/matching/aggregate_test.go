package matching

import (
	"errors"
	"testing"

	"github.com/talentdesk/matcher/internal/recruiting"
)

func TestAggregateWeightedSum(t *testing.T) {
	scores := CriteriaScores{
		Skills:     80,
		Location:   100,
		Experience: 60,
		Title:      50,
		Education:  100,
		Industry:   0,
	}

	got, err := Aggregate(scores, recruiting.DefaultWeights())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 80*40 + 100*25 + 60*15 + 50*10 + 100*5 + 0*5 = 7600 -> 76.
	if got != 76 {
		t.Fatalf("expected 76, got %d", got)
	}
}

func TestAggregateRejectsBadWeightSums(t *testing.T) {
	scores := CriteriaScores{Skills: 100}

	for _, weights := range []recruiting.Weights{
		{Skills: 39, Location: 25, Experience: 15, Title: 10, Education: 5, Industry: 5}, // 99
		{Skills: 41, Location: 25, Experience: 15, Title: 10, Education: 5, Industry: 5}, // 101
	} {
		_, err := Aggregate(scores, weights)
		if err == nil {
			t.Fatalf("expected error for weights summing to %d", weights.Sum())
		}

		var cfgErr *recruiting.ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("expected a ConfigurationError, got %T: %v", err, err)
		}
		if cfgErr.Sum != weights.Sum() {
			t.Fatalf("expected reported sum %d, got %d", weights.Sum(), cfgErr.Sum)
		}
	}
}

func TestAggregateRoundsHalfUp(t *testing.T) {
	weights := recruiting.Weights{Skills: 50, Location: 50}
	scores := CriteriaScores{Skills: 1, Location: 0}

	got, err := Aggregate(scores, weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 50/100 = 0.5 rounds up.
	if got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestAggregateIsMonotonicInSubScores(t *testing.T) {
	weights := recruiting.DefaultWeights()
	base := CriteriaScores{Skills: 80, Location: 70, Experience: 60, Title: 50, Education: 40, Industry: 30}

	before, err := Aggregate(base, weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bumped := base
	bumped.Skills = 100
	after, err := Aggregate(bumped, weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if after <= before {
		t.Fatalf("raising a sub-score must not lower the overall score: %d -> %d", before, after)
	}
}

func TestAggregateBounds(t *testing.T) {
	weights := recruiting.DefaultWeights()

	lo, err := Aggregate(CriteriaScores{}, weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lo != 0 {
		t.Fatalf("expected 0 for all-zero sub-scores, got %d", lo)
	}

	hi, err := Aggregate(CriteriaScores{Skills: 100, Location: 100, Experience: 100, Title: 100, Education: 100, Industry: 100}, weights)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hi != 100 {
		t.Fatalf("expected 100 for all-perfect sub-scores, got %d", hi)
	}
}
