// Package matchcache persists the last computed match result per
// (candidate, vacancy) pair so ranking calls do not recompute unchanged
// pairs. Freshness against the source records is the caller's rule; the
// stores only hold and index results. There is no negative caching.
package matchcache

import (
	"context"
	"sync"

	"github.com/talentdesk/matcher/internal/matching"
)

// Store is the match cache contract. Get returns (nil, nil) when the pair
// is absent. Implementations must be safe for concurrent use; computing the
// same pair twice concurrently is acceptable (the result is deterministic),
// so Put is a plain last-writer-wins upsert.
type Store interface {
	Get(ctx context.Context, candidateID, vacancyID string) (*matching.MatchResult, error)
	Put(ctx context.Context, result *matching.MatchResult) error
	InvalidateCandidate(ctx context.Context, candidateID string) error
	InvalidateVacancy(ctx context.Context, vacancyID string) error
}

// Memory is the in-process default store.
type Memory struct {
	mu      sync.RWMutex
	results map[string]*matching.MatchResult
}

func NewMemory() *Memory {
	return &Memory{results: make(map[string]*matching.MatchResult)}
}

func pairKey(candidateID, vacancyID string) string {
	return candidateID + "\x00" + vacancyID
}

func (m *Memory) Get(_ context.Context, candidateID, vacancyID string) (*matching.MatchResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.results[pairKey(candidateID, vacancyID)], nil
}

func (m *Memory) Put(_ context.Context, result *matching.MatchResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[pairKey(result.CandidateID, result.VacancyID)] = result
	return nil
}

// InvalidateCandidate drops every cached pair for the candidate. The pool
// is one agency's database, so a full scan is fine.
func (m *Memory) InvalidateCandidate(_ context.Context, candidateID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, result := range m.results {
		if result.CandidateID == candidateID {
			delete(m.results, key)
		}
	}
	return nil
}

// InvalidateVacancy drops every cached pair for the vacancy.
func (m *Memory) InvalidateVacancy(_ context.Context, vacancyID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, result := range m.results {
		if result.VacancyID == vacancyID {
			delete(m.results, key)
		}
	}
	return nil
}

// Len reports the number of cached results.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.results)
}
