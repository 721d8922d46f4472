package matching

import (
	"fmt"
	"strings"

	"github.com/talentdesk/matcher/internal/recruiting"
)

// Explain renders the per-criterion breakdown into a short recruiter-facing
// summary naming the dominant and limiting factors. The output is fully
// deterministic for identical inputs: no randomness, no external calls.
func (m *Matcher) Explain(scores CriteriaScores, weights recruiting.Weights, matches []SkillMatch) string {
	type criterion struct {
		name   string
		score  int
		weight int
	}

	ordered := []criterion{
		{"skills", scores.Skills, weights.Skills},
		{"location", scores.Location, weights.Location},
		{"experience", scores.Experience, weights.Experience},
		{"title", scores.Title, weights.Title},
		{"education", scores.Education, weights.Education},
		{"industry", scores.Industry, weights.Industry},
	}

	active := make([]criterion, 0, len(ordered))
	for _, c := range ordered {
		if c.weight > 0 {
			active = append(active, c)
		}
	}
	if len(active) == 0 {
		return "No weighted criteria configured for this vacancy."
	}

	best, second, worst := active[0], criterion{score: -1}, active[0]
	for _, c := range active[1:] {
		switch {
		case c.score > best.score:
			second = best
			best = c
		case c.score > second.score:
			second = c
		}
		if c.score < worst.score {
			worst = c
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s match (%d)", m.describe(best.score), best.name, best.score)
	if second.score >= m.cfg.PartialThreshold && second.name != worst.name {
		fmt.Fprintf(&b, " and %s (%d)", second.name, second.score)
	}
	if worst.name != best.name {
		fmt.Fprintf(&b, "; %s (%d) is the main gap", worst.name, worst.score)
	}
	b.WriteString(".")

	if len(matches) > 0 {
		strong := 0
		for _, match := range matches {
			if match.Relevance == RelevanceStrong {
				strong++
			}
		}
		fmt.Fprintf(&b, " %d of %d required skills matched strongly.", strong, len(matches))
	}

	return b.String()
}

func (m *Matcher) describe(score int) string {
	switch {
	case score >= m.cfg.StrongThreshold:
		return "Strong"
	case score >= m.cfg.PartialThreshold:
		return "Fair"
	default:
		return "Weak"
	}
}
