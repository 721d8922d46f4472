package matching

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/talentdesk/matcher/internal/recruiting"
)

// Source tags how a skill comparison was resolved.
type Source string

const (
	SourceDirect  Source = "direct"
	SourceSynonym Source = "synonym"
	SourceFuzzy   Source = "fuzzy"
)

// Relevance is the qualitative bucket derived from a similarity value.
type Relevance string

const (
	RelevanceStrong  Relevance = "strong"
	RelevancePartial Relevance = "partial"
	RelevanceWeak    Relevance = "weak"
)

const (
	similarityDirect  = 100
	similaritySynonym = 90
)

// SkillMatch is the outcome of comparing one required skill against a
// candidate's skill set. Immutable once computed; embedded in a MatchResult.
type SkillMatch struct {
	RequiredSkill  string    `json:"required_skill"`
	CandidateSkill string    `json:"candidate_skill,omitempty"`
	Similarity     int       `json:"similarity"`
	Relevance      Relevance `json:"relevance"`
	Source         Source    `json:"source"`
	SourceLocation string    `json:"source_location,omitempty"`
	SourceContext  string    `json:"source_context,omitempty"`
}

// Matcher compares skill names through three stages: direct equality,
// synonym lookup, fuzzy similarity. It is pure: the same inputs always
// produce the same SkillMatch.
type Matcher struct {
	cfg      Config
	synonyms *SynonymTable
}

func NewMatcher(cfg Config) *Matcher {
	cfg = cfg.withDefaults()
	return &Matcher{
		cfg:      cfg,
		synonyms: NewSynonymTable(cfg.Synonyms),
	}
}

// Relevance buckets a similarity value using the configured thresholds.
func (m *Matcher) Relevance(similarity int) Relevance {
	switch {
	case similarity >= m.cfg.StrongThreshold:
		return RelevanceStrong
	case similarity >= m.cfg.PartialThreshold:
		return RelevancePartial
	default:
		return RelevanceWeak
	}
}

// Match resolves one required skill against the candidate's skill set and
// returns the best SkillMatch found. Every call yields exactly one match,
// possibly a weak one; an empty candidate skill set yields similarity 0.
func (m *Matcher) Match(required string, candidateSkills []recruiting.Skill) SkillMatch {
	best := SkillMatch{
		RequiredSkill: required,
		Similarity:    0,
		Source:        SourceFuzzy,
	}

	target := normalize(required)
	for _, skill := range candidateSkills {
		name := normalize(skill.Name)
		if name == "" {
			continue
		}

		similarity, source := m.compare(target, name)
		if similarity > best.Similarity || best.CandidateSkill == "" {
			best.CandidateSkill = skill.Name
			best.Similarity = similarity
			best.Source = source
			best.SourceLocation = skill.SourceLocation
			best.SourceContext = skill.SourceContext
		}

		if best.Similarity == similarityDirect {
			break
		}
	}

	// Below the floor the best value is still reported, but it is noise:
	// no specific candidate skill is credited with the match.
	if best.Source == SourceFuzzy && best.Similarity < m.cfg.FuzzyFloor {
		best.CandidateSkill = ""
		best.SourceLocation = ""
		best.SourceContext = ""
	}

	best.Relevance = m.Relevance(best.Similarity)
	return best
}

// RelevanceView matches every candidate skill back against the full
// required-skill list, producing the "all candidate skills, colored by
// relevance to this role" view. It is a separate pass from the skills score
// and never affects the overall score.
func (m *Matcher) RelevanceView(candidateSkills []recruiting.Skill, requiredSkills []string) []SkillMatch {
	view := make([]SkillMatch, 0, len(candidateSkills))

	for _, skill := range candidateSkills {
		name := normalize(skill.Name)
		if name == "" {
			continue
		}

		entry := SkillMatch{
			CandidateSkill: skill.Name,
			Similarity:     0,
			Source:         SourceFuzzy,
			SourceLocation: skill.SourceLocation,
			SourceContext:  skill.SourceContext,
		}

		for _, required := range requiredSkills {
			similarity, source := m.compare(normalize(required), name)
			if similarity > entry.Similarity || entry.RequiredSkill == "" {
				entry.RequiredSkill = required
				entry.Similarity = similarity
				entry.Source = source
			}
			if entry.Similarity == similarityDirect {
				break
			}
		}

		if entry.Source == SourceFuzzy && entry.Similarity < m.cfg.FuzzyFloor {
			entry.RequiredSkill = ""
		}

		entry.Relevance = m.Relevance(entry.Similarity)
		view = append(view, entry)
	}

	return view
}

// compare scores two normalized skill names. Stages are tried in priority
// order and the first stage that fires wins; fuzzy can never outscore a
// synonym hit because its containment branch stays below the synonym score.
func (m *Matcher) compare(required, candidate string) (int, Source) {
	if required == candidate {
		return similarityDirect, SourceDirect
	}
	if m.synonyms.Match(required, candidate) {
		return similaritySynonym, SourceSynonym
	}
	return fuzzySimilarity(required, candidate), SourceFuzzy
}

// fuzzySimilarity maps string distance onto [0,100]: containment scores
// proportionally to the length ratio, anything else decays with normalized
// edit distance.
func fuzzySimilarity(a, b string) int {
	if a == "" || b == "" {
		return 0
	}

	lenA, lenB := len([]rune(a)), len([]rune(b))
	longer := lenA
	if lenB > lenA {
		longer = lenB
	}

	if contains(a, b) {
		shorter := lenA + lenB - longer
		return int(math.Floor(float64(similaritySynonym)*float64(shorter)/float64(longer) + 0.5))
	}

	distance := levenshtein.ComputeDistance(a, b)
	similarity := (1 - float64(distance)/float64(longer)) * 100
	return clampScore(int(math.Floor(similarity + 0.5)))
}

func contains(a, b string) bool {
	if len(a) < len(b) {
		a, b = b, a
	}
	return strings.Contains(a, b)
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
