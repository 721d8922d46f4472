package matching

import (
	"time"

	"github.com/talentdesk/matcher/internal/recruiting"
)

// Engine scores one candidate against one vacancy across all six criteria
// and assembles the full MatchResult. It is pure computation: no I/O, no
// shared state, safe to call concurrently.
type Engine struct {
	matcher *Matcher
	now     func() time.Time
}

func NewEngine(cfg Config) *Engine {
	return &Engine{
		matcher: NewMatcher(cfg),
		now:     time.Now,
	}
}

// Matcher exposes the engine's skill matcher for callers that need the
// relevance thresholds (e.g. rendering).
func (e *Engine) Matcher() *Matcher {
	return e.matcher
}

// Score computes the match result for the pair. Candidate data issues are
// returned as warnings and degrade the affected criteria to zero; they
// never abort the computation. The only error is a weight configuration
// violation, which callers are expected to have validated up front.
func (e *Engine) Score(candidate *recruiting.Candidate, vacancy *recruiting.Vacancy) (*MatchResult, []Warning, error) {
	issues := candidate.Validate()
	warnings := make([]Warning, 0, len(issues))
	for _, issue := range issues {
		warnings = append(warnings, Warning{Field: issue.Field, Reason: issue.Reason})
	}

	skills := usableSkills(candidate.Skills)

	matches := make([]SkillMatch, 0, len(vacancy.RequiredSkills))
	for _, required := range vacancy.RequiredSkills {
		matches = append(matches, e.matcher.Match(required, skills))
	}

	scores := CriteriaScores{
		Skills:     ScoreSkills(matches),
		Location:   ScoreLocation(candidate.Location, vacancy.Location, e.matcher.cfg.LocationPartial),
		Experience: ScoreExperience(candidate.YearsExperience, vacancy.ExperienceTier()),
		Title:      ScoreTitle(candidate.Title, vacancy.TitleKeywords),
		Education:  ScoreEducation(recruiting.EducationTierFromText(candidate.Education), vacancy.EducationTier()),
		Industry:   ScoreIndustry(candidate.Industry, vacancy.Industry, e.matcher.cfg.IndustryNeutral, e.matcher.cfg.IndustryPartial),
	}

	overall, err := Aggregate(scores, vacancy.Weights)
	if err != nil {
		return nil, warnings, err
	}

	return &MatchResult{
		CandidateID:             candidate.ID,
		VacancyID:               vacancy.ID,
		OverallScore:            overall,
		CriteriaScores:          scores,
		SkillMatches:            matches,
		CandidateSkillRelevance: e.matcher.RelevanceView(skills, vacancy.RequiredSkills),
		Explanation:             e.matcher.Explain(scores, vacancy.Weights, matches),
		CalculatedAt:            e.now().UTC(),
	}, warnings, nil
}

// usableSkills drops entries whose name is blank after normalization; the
// blanks have already been reported through Validate.
func usableSkills(skills []recruiting.Skill) []recruiting.Skill {
	usable := make([]recruiting.Skill, 0, len(skills))
	for _, skill := range skills {
		if normalize(skill.Name) != "" {
			usable = append(usable, skill)
		}
	}
	return usable
}
