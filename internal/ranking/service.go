// Package ranking is the entry point of the matching subsystem: it computes
// or retrieves match results for a candidate pool, filters, sorts and
// paginates them.
package ranking

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/talentdesk/matcher/internal/matchcache"
	"github.com/talentdesk/matcher/internal/matching"
	"github.com/talentdesk/matcher/internal/recruiting"
)

const (
	// StatusFilterAll disables the reviewer-decision filter.
	StatusFilterAll = "all"
	// StatusFilterTodo (the default) hides candidates marked not-a-match.
	StatusFilterTodo = "todo"

	defaultWorkers = 8
)

// Request are the query parameters of one ranking call.
type Request struct {
	VacancyID string
	Page      int
	PageSize  int
	Search    string
	Status    string
}

// CandidateDiagnostic reports the non-fatal data issues hit while scoring
// one candidate. The candidate is still ranked, with degraded sub-scores.
type CandidateDiagnostic struct {
	CandidateID string             `json:"candidate_id"`
	Warnings    []matching.Warning `json:"warnings"`
}

// Page is one page of ranked results plus the pool-level totals and the
// diagnostics side channel.
type Page struct {
	Results     []*matching.MatchResult `json:"results"`
	Total       int                     `json:"total"`
	TotalPages  int                     `json:"total_pages"`
	PageNumber  int                     `json:"page"`
	Diagnostics []CandidateDiagnostic   `json:"diagnostics,omitempty"`
}

// Service ranks a candidate pool against a vacancy. All collaborators are
// constructor-injected; the service owns no global state.
type Service struct {
	engine   *matching.Engine
	store    matchcache.Store
	statuses *recruiting.StatusBook
	logger   *zap.Logger
	workers  int
}

func NewService(engine *matching.Engine, store matchcache.Store, statuses *recruiting.StatusBook, logger *zap.Logger, workers int) *Service {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Service{
		engine:   engine,
		store:    store,
		statuses: statuses,
		logger:   logger,
		workers:  workers,
	}
}

// Rank scores every candidate in the pool against the requested vacancy,
// applies the search and status filters, sorts by score descending and
// returns the requested page. Candidate and vacancy snapshots are treated
// as read-only for the duration of the call.
func (s *Service) Rank(ctx context.Context, vacancies *recruiting.Vacancies, pool *recruiting.Candidates, req Request) (*Page, error) {
	if req.Page < 1 {
		return nil, &InvalidArgumentError{Argument: "page", Reason: fmt.Sprintf("must be >= 1, got %d", req.Page)}
	}
	if req.PageSize <= 0 {
		return nil, &InvalidArgumentError{Argument: "pageSize", Reason: fmt.Sprintf("must be > 0, got %d", req.PageSize)}
	}

	statusFilter := req.Status
	if statusFilter == "" {
		statusFilter = StatusFilterTodo
	}
	if statusFilter != StatusFilterTodo && statusFilter != StatusFilterAll {
		return nil, &InvalidArgumentError{Argument: "status", Reason: fmt.Sprintf("must be %q or %q, got %q", StatusFilterTodo, StatusFilterAll, req.Status)}
	}

	vacancy := vacancies.FindByID(req.VacancyID)
	if vacancy == nil {
		return nil, &NotFoundError{Resource: "vacancy", ID: req.VacancyID}
	}

	// Weight integrity is fatal for the whole request; catch it before
	// fanning out instead of failing once per candidate.
	if err := vacancy.Weights.Validate(); err != nil {
		return nil, err
	}

	results, diagnostics, err := s.scorePool(ctx, vacancy, pool)
	if err != nil {
		return nil, err
	}

	filtered := s.filter(results, pool, vacancy.ID, req.Search, statusFilter)

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].OverallScore != filtered[j].OverallScore {
			return filtered[i].OverallScore > filtered[j].OverallScore
		}
		return filtered[i].CandidateID < filtered[j].CandidateID
	})

	total := len(filtered)
	totalPages := (total + req.PageSize - 1) / req.PageSize

	start := (req.Page - 1) * req.PageSize
	end := start + req.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &Page{
		Results:     filtered[start:end],
		Total:       total,
		TotalPages:  totalPages,
		PageNumber:  req.Page,
		Diagnostics: diagnostics,
	}, nil
}

type scored struct {
	result      *matching.MatchResult
	diagnostic  *CandidateDiagnostic
	candidateID string
	err         error
}

// scorePool fans the pool out over a bounded worker pool and waits for all
// results. Each pair is an independent pure computation, so concurrent
// duplicate work for the same pair is harmless.
func (s *Service) scorePool(ctx context.Context, vacancy *recruiting.Vacancy, pool *recruiting.Candidates) ([]*matching.MatchResult, []CandidateDiagnostic, error) {
	jobs := make(chan *recruiting.Candidate)
	outcomes := make(chan scored, pool.Len())

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for candidate := range jobs {
				if ctx.Err() != nil {
					continue
				}
				outcomes <- s.scoreOne(ctx, candidate, vacancy)
			}
		}()
	}

	for _, candidate := range pool.Items {
		jobs <- candidate
	}
	close(jobs)
	wg.Wait()
	close(outcomes)

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	results := make([]*matching.MatchResult, 0, pool.Len())
	var diagnostics []CandidateDiagnostic
	for outcome := range outcomes {
		if outcome.err != nil {
			return nil, nil, outcome.err
		}
		results = append(results, outcome.result)
		if outcome.diagnostic != nil {
			diagnostics = append(diagnostics, *outcome.diagnostic)
		}
	}

	sort.Slice(diagnostics, func(i, j int) bool {
		return diagnostics[i].CandidateID < diagnostics[j].CandidateID
	})

	return results, diagnostics, nil
}

// scoreOne serves one pair read-through: a cached result still fresh
// against both records is reused, anything else is recomputed and written
// back. Cache failures degrade to recomputation, never to a request error.
func (s *Service) scoreOne(ctx context.Context, candidate *recruiting.Candidate, vacancy *recruiting.Vacancy) scored {
	cached, err := s.store.Get(ctx, candidate.ID, vacancy.ID)
	if err != nil {
		s.logger.Warn("match cache read failed; recomputing",
			zap.String("candidate_id", candidate.ID),
			zap.String("vacancy_id", vacancy.ID),
			zap.Error(err),
		)
	}
	if cached != nil && cached.FreshAgainst(candidate.UpdatedAt, vacancy.UpdatedAt) {
		return scored{result: cached, candidateID: candidate.ID}
	}

	result, warnings, err := s.engine.Score(candidate, vacancy)
	if err != nil {
		return scored{candidateID: candidate.ID, err: err}
	}

	if err := s.store.Put(ctx, result); err != nil {
		s.logger.Warn("match cache write failed",
			zap.String("candidate_id", candidate.ID),
			zap.String("vacancy_id", vacancy.ID),
			zap.Error(err),
		)
	}

	out := scored{result: result, candidateID: candidate.ID}
	if len(warnings) > 0 {
		s.logger.Warn("candidate scored with degraded data",
			zap.String("candidate_id", candidate.ID),
			zap.String("vacancy_id", vacancy.ID),
			zap.Int("warnings", len(warnings)),
		)
		out.diagnostic = &CandidateDiagnostic{CandidateID: candidate.ID, Warnings: warnings}
	}
	return out
}

// filter applies the search term and the reviewer-status filter. Neither
// mutates results or statuses.
func (s *Service) filter(results []*matching.MatchResult, pool *recruiting.Candidates, vacancyID, search, statusFilter string) []*matching.MatchResult {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]*matching.MatchResult, 0, len(results))
	for _, result := range results {
		candidate := pool.FindByID(result.CandidateID)

		if search != "" {
			if candidate == nil || !strings.Contains(candidate.SearchText(), search) {
				continue
			}
		}

		if statusFilter != StatusFilterAll &&
			s.statuses.Get(result.CandidateID, vacancyID) == recruiting.StatusNotAMatch {
			continue
		}

		filtered = append(filtered, result)
	}
	return filtered
}
