package recruiting

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// Status is a human reviewer's decision about one (candidate, vacancy) pair.
// It is only ever used to filter ranked results; it never feeds the score.
type Status string

const (
	StatusTodo      Status = "todo"
	StatusNotAMatch Status = "not-a-match"
)

// ParseStatus validates a reviewer decision value.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusTodo:
		return StatusTodo, nil
	case StatusNotAMatch:
		return StatusNotAMatch, nil
	default:
		return "", fmt.Errorf("unknown candidate status %q", s)
	}
}

// StatusEntry is the persisted form of one decision.
type StatusEntry struct {
	CandidateID string    `json:"candidate_id"`
	VacancyID   string    `json:"vacancy_id"`
	Status      Status    `json:"status"`
	DecidedAt   time.Time `json:"decided_at"`
}

// StatusBook holds reviewer decisions keyed by (candidate, vacancy) and can
// round-trip them through a JSON file so decisions survive between runs.
// Safe for concurrent use.
type StatusBook struct {
	mu      sync.RWMutex
	entries map[string]StatusEntry
}

func NewStatusBook() *StatusBook {
	return &StatusBook{entries: make(map[string]StatusEntry)}
}

func statusKey(candidateID, vacancyID string) string {
	return candidateID + "\x00" + vacancyID
}

// Get returns the recorded decision for the pair. Pairs without a recorded
// decision default to todo.
func (b *StatusBook) Get(candidateID, vacancyID string) Status {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if entry, ok := b.entries[statusKey(candidateID, vacancyID)]; ok {
		return entry.Status
	}
	return StatusTodo
}

// Set records a decision for the pair.
func (b *StatusBook) Set(candidateID, vacancyID string, status Status) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[statusKey(candidateID, vacancyID)] = StatusEntry{
		CandidateID: candidateID,
		VacancyID:   vacancyID,
		Status:      status,
		DecidedAt:   time.Now().UTC(),
	}
}

// Entries returns all decisions ordered by candidate then vacancy id.
func (b *StatusBook) Entries() []StatusEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entries := make([]StatusEntry, 0, len(b.entries))
	for _, entry := range b.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CandidateID != entries[j].CandidateID {
			return entries[i].CandidateID < entries[j].CandidateID
		}
		return entries[i].VacancyID < entries[j].VacancyID
	})
	return entries
}

// LoadStatusBook reads decisions from a JSON file. A missing or empty file
// yields an empty book.
func LoadStatusBook(path string) (*StatusBook, error) {
	book := NewStatusBook()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return book, nil
		}
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if stat.Size() == 0 {
		return book, nil
	}

	var entries []StatusEntry
	if err := json.NewDecoder(file).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding status file %q: %w", path, err)
	}

	for _, entry := range entries {
		book.entries[statusKey(entry.CandidateID, entry.VacancyID)] = entry
	}
	return book, nil
}

// Save writes all decisions to a JSON file, replacing its contents.
func (b *StatusBook) Save(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(b.Entries())
}
