package recruiting

import "strings"

// ExperienceTier is a vacancy's required seniority bucket. The year ranges
// mirror the buckets used on the major job boards.
type ExperienceTier string

const (
	ExperienceEntry  ExperienceTier = "entry"  // up to 1 year
	ExperienceJunior ExperienceTier = "junior" // 1-3 years
	ExperienceMid    ExperienceTier = "mid"    // 3-6 years
	ExperienceSenior ExperienceTier = "senior" // 6+ years
)

// ParseExperienceTier maps free-form tier spellings onto a known tier.
// Unknown or empty input falls back to entry.
func ParseExperienceTier(s string) ExperienceTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "junior", "between1and3":
		return ExperienceJunior
	case "mid", "middle", "between3and6":
		return ExperienceMid
	case "senior", "lead", "morethan6":
		return ExperienceSenior
	default:
		return ExperienceEntry
	}
}

// Range returns the tier's target years-of-experience window. The senior
// tier is open-ended upwards, signalled by max < 0.
func (t ExperienceTier) Range() (minYears, maxYears float64) {
	switch t {
	case ExperienceJunior:
		return 1, 3
	case ExperienceMid:
		return 3, 6
	case ExperienceSenior:
		return 6, -1
	default:
		return 0, 1
	}
}

// EducationTier is an ordinal education level. Higher values compare greater.
type EducationTier int

const (
	EducationNone EducationTier = iota
	EducationSecondary
	EducationBachelor
	EducationMaster
	EducationDoctorate
)

func (t EducationTier) String() string {
	switch t {
	case EducationSecondary:
		return "secondary"
	case EducationBachelor:
		return "bachelor"
	case EducationMaster:
		return "master"
	case EducationDoctorate:
		return "doctorate"
	default:
		return "none"
	}
}

// ParseEducationTier maps a tier name onto its ordinal value. Unknown or
// empty input yields EducationNone.
func ParseEducationTier(s string) EducationTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "secondary", "high school":
		return EducationSecondary
	case "bachelor", "bachelors":
		return EducationBachelor
	case "master", "masters":
		return EducationMaster
	case "doctorate", "phd":
		return EducationDoctorate
	default:
		return EducationNone
	}
}

// educationMarkers are scanned highest tier first so "PhD in CS after a BSc"
// resolves to doctorate.
var educationMarkers = []struct {
	tier    EducationTier
	needles []string
}{
	{EducationDoctorate, []string{"phd", "ph.d", "doctorate", "doctoral"}},
	{EducationMaster, []string{"master", "msc", "m.sc", "mba", "m.s."}},
	{EducationBachelor, []string{"bachelor", "bsc", "b.sc", "b.s.", "ba ", "beng", "undergraduate degree"}},
	{EducationSecondary, []string{"high school", "secondary", "diploma", "vocational"}},
}

// EducationTierFromText infers the highest attained tier from a free-text
// education description, e.g. a line lifted from a CV.
func EducationTierFromText(text string) EducationTier {
	lowered := strings.ToLower(text)
	for _, marker := range educationMarkers {
		for _, needle := range marker.needles {
			if strings.Contains(lowered, needle) {
				return marker.tier
			}
		}
	}
	return EducationNone
}
