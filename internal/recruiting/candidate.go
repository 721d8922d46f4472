package recruiting

import (
	"fmt"
	"strings"
	"time"
)

// Skill is one candidate skill, optionally annotated with where the CV
// parser found it (e.g. "Work Experience, page 2").
type Skill struct {
	Name           string `json:"name"`
	SourceLocation string `json:"source_location,omitempty"`
	SourceContext  string `json:"source_context,omitempty"`
}

// Candidate is a person profile as exported from the back office, consumed
// read-only during ranking.
type Candidate struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Company         string    `json:"company"`
	Title           string    `json:"title"`
	Skills          []Skill   `json:"skills"`
	Location        string    `json:"location"`
	YearsExperience float64   `json:"years_experience"`
	Education       string    `json:"education"`
	Industry        string    `json:"industry"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Issue describes a single data problem on a candidate record. Issues are
// collected, not raised: a malformed record is still ranked, with the
// affected criteria degraded to zero.
type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Validate reports the data issues that degrade scoring for this candidate.
// It never fails outright.
func (c *Candidate) Validate() []Issue {
	var issues []Issue

	if strings.TrimSpace(c.ID) == "" {
		issues = append(issues, Issue{Field: "id", Reason: "candidate id is empty"})
	}
	if c.YearsExperience < 0 {
		issues = append(issues, Issue{
			Field:  "years_experience",
			Reason: fmt.Sprintf("negative years of experience: %.1f", c.YearsExperience),
		})
	}
	for i, skill := range c.Skills {
		if strings.TrimSpace(skill.Name) == "" {
			issues = append(issues, Issue{
				Field:  "skills",
				Reason: fmt.Sprintf("skill entry %d has an empty name", i),
			})
		}
	}

	return issues
}

// SearchText is the lowercased haystack the ranking search filter matches
// against: name, company and title.
func (c *Candidate) SearchText() string {
	return strings.ToLower(strings.Join([]string{c.Name, c.Company, c.Title}, " "))
}

type Candidates struct {
	Items []*Candidate `json:"items"`
}

func (c *Candidates) Len() int {
	return len(c.Items)
}

func (c *Candidates) FindByID(id string) *Candidate {
	for _, candidate := range c.Items {
		if candidate.ID == id {
			return candidate
		}
	}
	return nil
}
