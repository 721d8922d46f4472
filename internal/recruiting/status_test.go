package recruiting

import (
	"path/filepath"
	"testing"
)

func TestParseStatus(t *testing.T) {
	if status, err := ParseStatus("todo"); err != nil || status != StatusTodo {
		t.Fatalf("ParseStatus(todo) = %s, %v", status, err)
	}
	if status, err := ParseStatus(" Not-A-Match "); err != nil || status != StatusNotAMatch {
		t.Fatalf("ParseStatus(not-a-match) = %s, %v", status, err)
	}
	if _, err := ParseStatus("rejected"); err == nil {
		t.Fatalf("expected an error for an unknown status")
	}
}

func TestStatusBookDefaultsToTodo(t *testing.T) {
	book := NewStatusBook()

	if got := book.Get("c1", "v1"); got != StatusTodo {
		t.Fatalf("expected todo for an unrecorded pair, got %s", got)
	}
}

func TestStatusBookSetIsPerPair(t *testing.T) {
	book := NewStatusBook()
	book.Set("c1", "v1", StatusNotAMatch)

	if got := book.Get("c1", "v1"); got != StatusNotAMatch {
		t.Fatalf("expected not-a-match, got %s", got)
	}
	// The decision applies to one vacancy only.
	if got := book.Get("c1", "v2"); got != StatusTodo {
		t.Fatalf("expected todo for the other vacancy, got %s", got)
	}

	// Decisions are reversible.
	book.Set("c1", "v1", StatusTodo)
	if got := book.Get("c1", "v1"); got != StatusTodo {
		t.Fatalf("expected todo after reverting, got %s", got)
	}
}

func TestStatusBookFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statuses.json")

	book := NewStatusBook()
	book.Set("c2", "v1", StatusNotAMatch)
	book.Set("c1", "v1", StatusNotAMatch)
	book.Set("c1", "v2", StatusTodo)

	if err := book.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := LoadStatusBook(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got := loaded.Get("c1", "v1"); got != StatusNotAMatch {
		t.Fatalf("expected not-a-match after reload, got %s", got)
	}
	if got := loaded.Get("c1", "v2"); got != StatusTodo {
		t.Fatalf("expected todo after reload, got %s", got)
	}

	entries := loaded.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// Entries come back ordered by candidate then vacancy.
	if entries[0].CandidateID != "c1" || entries[0].VacancyID != "v1" {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[2].CandidateID != "c2" {
		t.Fatalf("unexpected last entry: %+v", entries[2])
	}
	if entries[0].DecidedAt.IsZero() {
		t.Fatalf("expected decision timestamps to survive the round trip")
	}
}

func TestLoadStatusBookMissingFile(t *testing.T) {
	book, err := LoadStatusBook(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("a missing status file is not an error: %v", err)
	}
	if len(book.Entries()) != 0 {
		t.Fatalf("expected an empty book, got %d entries", len(book.Entries()))
	}
}
