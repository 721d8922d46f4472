package recruiting

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
)

// Snapshot files are JSON exports from the back office of the form
// {"items": [...]}. The records routinely carry extra fields (CRM ids,
// audit columns) that the matcher does not care about, so they are decoded
// leniently through mapstructure instead of strict struct unmarshalling.

func decodeItems(raw []map[string]any, result any) error {
	cfg := &mapstructure.DecoderConfig{
		Result:     result,
		TagName:    "json",
		DecodeHook: mapstructure.StringToTimeHookFunc(time.RFC3339),
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

func readSnapshot(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parsing snapshot %q: %w", path, err)
	}
	return envelope.Items, nil
}

// LoadVacanciesFile loads a vacancy snapshot export.
func LoadVacanciesFile(path string) (*Vacancies, error) {
	raw, err := readSnapshot(path)
	if err != nil {
		return nil, err
	}

	var items []*Vacancy
	if err := decodeItems(raw, &items); err != nil {
		return nil, fmt.Errorf("decoding vacancies from %q: %w", path, err)
	}
	return &Vacancies{Items: items}, nil
}

// LoadCandidatesFile loads a candidate pool snapshot export.
func LoadCandidatesFile(path string) (*Candidates, error) {
	raw, err := readSnapshot(path)
	if err != nil {
		return nil, err
	}

	var items []*Candidate
	if err := decodeItems(raw, &items); err != nil {
		return nil, fmt.Errorf("decoding candidates from %q: %w", path, err)
	}
	return &Candidates{Items: items}, nil
}
