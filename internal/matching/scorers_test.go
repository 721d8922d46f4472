package matching

import (
	"testing"

	"github.com/talentdesk/matcher/internal/recruiting"
)

func TestScoreSkillsAveragesSimilarities(t *testing.T) {
	matches := []SkillMatch{
		{Similarity: 100},
		{Similarity: 50},
	}

	if got := ScoreSkills(matches); got != 75 {
		t.Fatalf("expected 75, got %d", got)
	}
}

func TestScoreSkillsRoundsHalfUp(t *testing.T) {
	matches := []SkillMatch{
		{Similarity: 100},
		{Similarity: 50},
		{Similarity: 25},
	}

	// 175/3 = 58.33 -> 58.
	if got := ScoreSkills(matches); got != 58 {
		t.Fatalf("expected 58, got %d", got)
	}

	matches = []SkillMatch{{Similarity: 100}, {Similarity: 1}}
	// 101/2 = 50.5 -> 51.
	if got := ScoreSkills(matches); got != 51 {
		t.Fatalf("expected 51, got %d", got)
	}
}

func TestScoreSkillsVacuouslyPerfect(t *testing.T) {
	if got := ScoreSkills(nil); got != 100 {
		t.Fatalf("expected 100 for a vacancy without required skills, got %d", got)
	}
}

func TestScoreLocation(t *testing.T) {
	cases := []struct {
		name      string
		candidate string
		vacancy   string
		want      int
	}{
		{"exact", "Berlin", "Berlin", 100},
		{"case insensitive", "berlin", "Berlin", 100},
		{"substring", "Berlin, Germany", "Berlin", 100},
		{"shared token", "Munich, Germany", "Berlin, Germany", 60},
		{"no overlap", "Lisbon", "Berlin", 0},
		{"vacancy without location", "Lisbon", "", 100},
		{"candidate without location", "", "Berlin", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScoreLocation(tc.candidate, tc.vacancy, 60); got != tc.want {
				t.Fatalf("ScoreLocation(%q, %q) = %d, want %d", tc.candidate, tc.vacancy, got, tc.want)
			}
		})
	}
}

func TestScoreExperience(t *testing.T) {
	cases := []struct {
		name  string
		years float64
		tier  recruiting.ExperienceTier
		want  int
	}{
		{"inside mid band", 4, recruiting.ExperienceMid, 100},
		{"one year under mid", 2, recruiting.ExperienceMid, 75},
		{"two years over mid", 8, recruiting.ExperienceMid, 50},
		{"far under senior", 0, recruiting.ExperienceSenior, 0},
		{"senior band is open ended", 20, recruiting.ExperienceSenior, 100},
		{"entry level fresh", 0.5, recruiting.ExperienceEntry, 100},
		{"negative years", -1, recruiting.ExperienceEntry, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScoreExperience(tc.years, tc.tier); got != tc.want {
				t.Fatalf("ScoreExperience(%v, %s) = %d, want %d", tc.years, tc.tier, got, tc.want)
			}
		})
	}
}

func TestScoreTitle(t *testing.T) {
	keywords := []string{"Backend", "Engineer"}

	if got := ScoreTitle("Senior Backend Engineer", keywords); got != 100 {
		t.Fatalf("expected full coverage 100, got %d", got)
	}
	if got := ScoreTitle("Backend Developer", keywords); got != 50 {
		t.Fatalf("expected half coverage 50, got %d", got)
	}
	if got := ScoreTitle("Data Analyst", keywords); got != 0 {
		t.Fatalf("expected no coverage 0, got %d", got)
	}
	if got := ScoreTitle("Data Analyst", nil); got != 100 {
		t.Fatalf("expected 100 for a vacancy without title keywords, got %d", got)
	}
	if got := ScoreTitle("", keywords); got != 0 {
		t.Fatalf("expected 0 for a candidate without a title, got %d", got)
	}
}

func TestScoreEducation(t *testing.T) {
	cases := []struct {
		name      string
		candidate recruiting.EducationTier
		required  recruiting.EducationTier
		want      int
	}{
		{"meets exactly", recruiting.EducationBachelor, recruiting.EducationBachelor, 100},
		{"exceeds", recruiting.EducationMaster, recruiting.EducationBachelor, 100},
		{"one tier below", recruiting.EducationBachelor, recruiting.EducationMaster, 50},
		{"two tiers below", recruiting.EducationSecondary, recruiting.EducationMaster, 0},
		{"nothing required", recruiting.EducationNone, recruiting.EducationNone, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScoreEducation(tc.candidate, tc.required); got != tc.want {
				t.Fatalf("ScoreEducation(%s, %s) = %d, want %d", tc.candidate, tc.required, got, tc.want)
			}
		})
	}
}

func TestScoreIndustry(t *testing.T) {
	if got := ScoreIndustry("Fintech", "fintech", 50, 60); got != 100 {
		t.Fatalf("expected exact industry 100, got %d", got)
	}
	if got := ScoreIndustry("Finance & Banking", "Finance", 50, 60); got != 60 {
		t.Fatalf("expected related industry 60, got %d", got)
	}
	if got := ScoreIndustry("Agriculture", "Fintech", 50, 60); got != 0 {
		t.Fatalf("expected unrelated industry 0, got %d", got)
	}
	// Unknown candidate industry is neutral, never a hard zero.
	if got := ScoreIndustry("", "Fintech", 50, 60); got != 50 {
		t.Fatalf("expected neutral 50, got %d", got)
	}
	if got := ScoreIndustry("Agriculture", "", 50, 60); got != 50 {
		t.Fatalf("expected neutral 50 for a vacancy without industry, got %d", got)
	}
}
