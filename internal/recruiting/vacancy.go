package recruiting

import "time"

// Vacancy is an open requisition as exported from the back office. It is
// consumed read-only: one snapshot stays immutable for the duration of a
// ranking call.
type Vacancy struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	TitleKeywords  []string  `json:"title_keywords"`
	RequiredSkills []string  `json:"required_skills"`
	Location       string    `json:"location"`
	Experience     string    `json:"experience"`
	Education      string    `json:"education"`
	Industry       string    `json:"industry"`
	Weights        Weights   `json:"weights"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ExperienceTier returns the vacancy's parsed seniority bucket.
func (v *Vacancy) ExperienceTier() ExperienceTier {
	return ParseExperienceTier(v.Experience)
}

// EducationTier returns the vacancy's parsed required education level.
func (v *Vacancy) EducationTier() EducationTier {
	return ParseEducationTier(v.Education)
}

type Vacancies struct {
	Items []*Vacancy `json:"items"`
}

func (v *Vacancies) Len() int {
	return len(v.Items)
}

func (v *Vacancies) FindByID(id string) *Vacancy {
	for _, vacancy := range v.Items {
		if vacancy.ID == id {
			return vacancy
		}
	}
	return nil
}
