package matching

import (
	"math"
	"strings"

	"github.com/talentdesk/matcher/internal/recruiting"
)

// The six criteria scorers. Each is pure, side-effect free and returns an
// integer in [0,100] for any well-formed input, including empty fields.

// ScoreSkills averages the similarity of the per-required-skill matches.
// A vacancy with no required skills is a vacuous match: 100.
func ScoreSkills(matches []SkillMatch) int {
	if len(matches) == 0 {
		return 100
	}

	total := 0
	for _, match := range matches {
		total += match.Similarity
	}
	return roundHalfUp(float64(total) / float64(len(matches)))
}

// ScoreLocation compares normalized location strings. An exact or substring
// match scores full credit, a shared region token scores the configured
// partial value, anything else zero. A missing candidate location is zero,
// never an error.
func ScoreLocation(candidateLocation, vacancyLocation string, partial int) int {
	vacancy := normalize(vacancyLocation)
	if vacancy == "" {
		// The vacancy does not constrain location.
		return 100
	}

	candidate := normalize(candidateLocation)
	if candidate == "" {
		return 0
	}

	if candidate == vacancy || strings.Contains(candidate, vacancy) || strings.Contains(vacancy, candidate) {
		return 100
	}

	candidateTokens := tokenSet(candidate)
	for _, token := range tokenize(vacancy) {
		if candidateTokens[token] {
			return partial
		}
	}

	return 0
}

// experienceDecayPerYear is the credit lost per year of distance from the
// vacancy tier's target range.
const experienceDecayPerYear = 25.0

// ScoreExperience grants full credit when the candidate's years of
// experience fall inside the vacancy tier's target range and linearly
// decaying credit outside it, floored at zero.
func ScoreExperience(years float64, tier recruiting.ExperienceTier) int {
	if years < 0 {
		return 0
	}

	minYears, maxYears := tier.Range()

	var distance float64
	switch {
	case years < minYears:
		distance = minYears - years
	case maxYears >= 0 && years > maxYears:
		distance = years - maxYears
	default:
		return 100
	}

	return clampScore(roundHalfUp(100 - distance*experienceDecayPerYear))
}

// ScoreTitle measures token overlap between the candidate's title text and
// the vacancy's title keywords. Titles vary wildly in phrasing, so this is
// a keyword-coverage ratio, not an edit distance.
func ScoreTitle(candidateTitle string, keywords []string) int {
	targets := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		for _, token := range tokenize(keyword) {
			targets = append(targets, token)
		}
	}
	if len(targets) == 0 {
		return 100
	}

	candidateTokens := tokenSet(candidateTitle)
	matched := 0
	for _, target := range targets {
		if candidateTokens[target] {
			matched++
		}
	}

	return roundHalfUp(float64(matched) / float64(len(targets)) * 100)
}

// ScoreEducation compares ordinal education tiers: full credit at or above
// the required tier, half credit one tier below, zero further below.
func ScoreEducation(candidate, required recruiting.EducationTier) int {
	switch {
	case candidate >= required:
		return 100
	case candidate == required-1:
		return 50
	default:
		return 0
	}
}

// ScoreIndustry compares normalized industry fields. When either side is
// unset the configured neutral default applies: industry is the least
// reliable field in the database and its absence is not penalized.
func ScoreIndustry(candidateIndustry, vacancyIndustry string, neutral, partial int) int {
	candidate := normalize(candidateIndustry)
	vacancy := normalize(vacancyIndustry)

	if candidate == "" || vacancy == "" {
		return neutral
	}
	if candidate == vacancy {
		return 100
	}
	if strings.Contains(candidate, vacancy) || strings.Contains(vacancy, candidate) {
		return partial
	}

	candidateTokens := tokenSet(candidate)
	for _, token := range tokenize(vacancy) {
		if candidateTokens[token] {
			return partial
		}
	}

	return 0
}

// roundHalfUp keeps scores stable and reproducible across recomputation.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
