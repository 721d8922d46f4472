package ai

import (
	"context"

	"github.com/talentdesk/matcher/internal/matching"
	"github.com/talentdesk/matcher/internal/recruiting"
)

// Draft is a generated outreach message for one matched candidate.
type Draft struct {
	Message string
	Raw     string
}

// OutreachWriter drafts a personalised first-contact message from a
// computed match. The matching core never depends on this interface; it is
// consumed only at the CLI boundary.
type OutreachWriter interface {
	Draft(ctx context.Context, candidate *recruiting.Candidate, vacancy *recruiting.Vacancy, result *matching.MatchResult) (*Draft, error)
}
