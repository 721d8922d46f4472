package recruiting

import "testing"

func TestParseExperienceTier(t *testing.T) {
	cases := []struct {
		in   string
		want ExperienceTier
	}{
		{"senior", ExperienceSenior},
		{"Lead", ExperienceSenior},
		{"moreThan6", ExperienceSenior},
		{"mid", ExperienceMid},
		{"between3and6", ExperienceMid},
		{"junior", ExperienceJunior},
		{"between1and3", ExperienceJunior},
		{"entry", ExperienceEntry},
		{"", ExperienceEntry},
		{"gibberish", ExperienceEntry},
	}

	for _, tc := range cases {
		if got := ParseExperienceTier(tc.in); got != tc.want {
			t.Fatalf("ParseExperienceTier(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestExperienceTierRanges(t *testing.T) {
	if min, max := ExperienceJunior.Range(); min != 1 || max != 3 {
		t.Fatalf("unexpected junior range: %v-%v", min, max)
	}
	if min, max := ExperienceSenior.Range(); min != 6 || max >= 0 {
		t.Fatalf("senior range must be open ended: %v-%v", min, max)
	}
}

func TestParseEducationTierOrdering(t *testing.T) {
	if !(EducationNone < EducationSecondary && EducationSecondary < EducationBachelor &&
		EducationBachelor < EducationMaster && EducationMaster < EducationDoctorate) {
		t.Fatalf("education tiers must be strictly ordered")
	}

	if got := ParseEducationTier("PhD"); got != EducationDoctorate {
		t.Fatalf("expected doctorate, got %s", got)
	}
	if got := ParseEducationTier("bachelors"); got != EducationBachelor {
		t.Fatalf("expected bachelor, got %s", got)
	}
	if got := ParseEducationTier("unknown"); got != EducationNone {
		t.Fatalf("expected none for unknown input, got %s", got)
	}
}

func TestEducationTierFromText(t *testing.T) {
	cases := []struct {
		text string
		want EducationTier
	}{
		{"MSc Software Engineering, TU Delft", EducationMaster},
		{"BSc Computer Science", EducationBachelor},
		{"PhD in CS after a BSc in Maths", EducationDoctorate},
		{"High school diploma", EducationSecondary},
		{"self-taught", EducationNone},
		{"", EducationNone},
	}

	for _, tc := range cases {
		if got := EducationTierFromText(tc.text); got != tc.want {
			t.Fatalf("EducationTierFromText(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
}
