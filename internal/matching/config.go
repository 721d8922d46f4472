package matching

// Config carries the tunable matching constants. The thresholds here were
// calibrated against recruiter feedback and are deliberately configuration,
// not code: see the matching section of the config file.
type Config struct {
	// Synonyms maps a canonical skill name to its alternative spellings.
	// The table is applied bidirectionally after normalization.
	Synonyms map[string][]string

	// FuzzyFloor is the similarity below which a fuzzy match is considered
	// noise. The best value found is still reported; the floor only matters
	// for classification.
	FuzzyFloor int

	// StrongThreshold and PartialThreshold derive the relevance tier from a
	// similarity value: strong >= StrongThreshold, partial >= PartialThreshold,
	// weak below.
	StrongThreshold  int
	PartialThreshold int

	// LocationPartial is the score granted for a same-region token overlap
	// that falls short of an exact location match.
	LocationPartial int

	// IndustryNeutral is the score granted when either side's industry field
	// is unset. Industry is the least reliable field in the database, so the
	// absence of data is not penalized.
	IndustryNeutral int

	// IndustryPartial is the score granted for overlapping but not identical
	// industry fields ("fintech" vs "finance & banking").
	IndustryPartial int
}

const (
	defaultFuzzyFloor       = 20
	defaultStrongThreshold  = 70
	defaultPartialThreshold = 40
	defaultLocationPartial  = 60
	defaultIndustryNeutral  = 50
	defaultIndustryPartial  = 60
)

func (c Config) withDefaults() Config {
	if c.FuzzyFloor <= 0 {
		c.FuzzyFloor = defaultFuzzyFloor
	}
	if c.StrongThreshold <= 0 {
		c.StrongThreshold = defaultStrongThreshold
	}
	if c.PartialThreshold <= 0 {
		c.PartialThreshold = defaultPartialThreshold
	}
	if c.LocationPartial <= 0 {
		c.LocationPartial = defaultLocationPartial
	}
	if c.IndustryNeutral <= 0 {
		c.IndustryNeutral = defaultIndustryNeutral
	}
	if c.IndustryPartial <= 0 {
		c.IndustryPartial = defaultIndustryPartial
	}
	return c
}
