package matching

import "github.com/talentdesk/matcher/internal/recruiting"

// CriteriaScores holds the six per-criterion sub-scores, each in [0,100].
type CriteriaScores struct {
	Skills     int `json:"skills"`
	Location   int `json:"location"`
	Experience int `json:"experience"`
	Title      int `json:"title"`
	Education  int `json:"education"`
	Industry   int `json:"industry"`
}

// Aggregate combines the sub-scores into one overall score using the
// vacancy's weights. Weights that do not sum to 100 are a data-entry
// problem and fail with a *recruiting.ConfigurationError instead of being
// silently renormalized.
func Aggregate(scores CriteriaScores, weights recruiting.Weights) (int, error) {
	if err := weights.Validate(); err != nil {
		return 0, err
	}

	weighted := scores.Skills*weights.Skills +
		scores.Location*weights.Location +
		scores.Experience*weights.Experience +
		scores.Title*weights.Title +
		scores.Education*weights.Education +
		scores.Industry*weights.Industry

	return roundHalfUp(float64(weighted) / float64(recruiting.WeightTotal)), nil
}
