package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/talentdesk/matcher/internal/ai"
	"github.com/talentdesk/matcher/internal/matching"
	"github.com/talentdesk/matcher/internal/recruiting"
	"github.com/talentdesk/matcher/internal/util"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Writer drafts outreach messages with Gemini.
type Writer struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewWriter(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Writer {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	return &Writer{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Draft builds the outreach prompt from the candidate, vacancy and computed
// match, and returns the generated message.
func (w *Writer) Draft(ctx context.Context, candidate *recruiting.Candidate, vacancy *recruiting.Vacancy, result *matching.MatchResult) (*ai.Draft, error) {
	if candidate == nil {
		return nil, fmt.Errorf("candidate is required")
	}
	if vacancy == nil {
		return nil, fmt.Errorf("vacancy is required")
	}
	if result == nil {
		return nil, fmt.Errorf("match result is required")
	}

	prompt, err := buildPrompt(candidate, vacancy, result)
	if err != nil {
		return nil, err
	}

	w.logger.Debug("gemini outreach request",
		zap.String("candidate_id", candidate.ID),
		zap.String("vacancy_id", vacancy.ID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, w.maxLogLen)),
	)

	raw, err := w.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	w.logger.Debug("gemini outreach response",
		zap.String("candidate_id", candidate.ID),
		zap.String("vacancy_id", vacancy.ID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, w.maxLogLen)),
	)

	message := stripFences(raw)
	if message == "" {
		return nil, fmt.Errorf("gemini returned an empty outreach message")
	}

	return &ai.Draft{Message: message, Raw: raw}, nil
}

func buildPrompt(candidate *recruiting.Candidate, vacancy *recruiting.Vacancy, result *matching.MatchResult) (string, error) {
	vacancyJSON, err := json.MarshalIndent(vacancy, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal vacancy payload: %w", err)
	}

	candidateJSON, err := json.MarshalIndent(candidate, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal candidate payload: %w", err)
	}

	matchPayload := map[string]any{
		"criteria_scores": result.CriteriaScores,
		"skill_matches":   result.SkillMatches,
		"explanation":     result.Explanation,
	}
	matchJSON, err := json.MarshalIndent(matchPayload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal match payload: %w", err)
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{VACANCY_JSON}}", string(vacancyJSON))
	prompt = strings.ReplaceAll(prompt, "{{CANDIDATE_JSON}}", string(candidateJSON))
	prompt = strings.ReplaceAll(prompt, "{{MATCH_JSON}}", string(matchJSON))
	return prompt, nil
}

func stripFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```text")
		cleaned = strings.TrimPrefix(cleaned, "```")
		if idx := strings.LastIndex(cleaned, "```"); idx != -1 {
			cleaned = cleaned[:idx]
		}
	}
	return strings.TrimSpace(strings.Trim(cleaned, "`"))
}
