package matching

import "time"

// MatchResult is the full outcome of scoring one candidate against one
// vacancy. It is created once, owned by the match cache for its lifetime
// and never mutated afterwards.
type MatchResult struct {
	CandidateID             string         `json:"candidate_id"`
	VacancyID               string         `json:"vacancy_id"`
	OverallScore            int            `json:"overall_score"`
	CriteriaScores          CriteriaScores `json:"criteria_scores"`
	SkillMatches            []SkillMatch   `json:"skill_matches"`
	CandidateSkillRelevance []SkillMatch   `json:"candidate_skill_relevance"`
	Explanation             string         `json:"explanation"`
	CalculatedAt            time.Time      `json:"calculated_at"`
}

// FreshAgainst reports whether the result is still valid for source records
// last updated at the given times. A result is stale as soon as either
// record is newer than the calculation.
func (r *MatchResult) FreshAgainst(candidateUpdated, vacancyUpdated time.Time) bool {
	return !candidateUpdated.After(r.CalculatedAt) && !vacancyUpdated.After(r.CalculatedAt)
}

// Warning is a non-fatal, per-candidate scoring issue. Warnings are
// collected into the ranking diagnostics instead of being raised, so one
// bad record never blocks ranking for the whole pool.
type Warning struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}
