package ciperf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store persists summary and detailed reports as JSON files, one dated pair
// per day plus a rolling "latest" pair.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created on the
// first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes the dated report files and refreshes the latest pair.
func (s *Store) Save(summary Summary, analyses []RunAnalysis) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	date := time.Now().Format("2006-01-02")
	files := map[string]any{
		fmt.Sprintf("summary-%s.json", date):  summary,
		fmt.Sprintf("detailed-%s.json", date): analyses,
		"latest-summary.json":                 summary,
		"latest-detailed.json":                analyses,
	}
	for name, v := range files {
		if err := s.writeJSON(name, v); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// LoadLatestSummary reads latest-summary.json. os.ErrNotExist when no report
// has been generated yet.
func (s *Store) LoadLatestSummary() (Summary, error) {
	var summary Summary
	err := s.readJSON("latest-summary.json", &summary)
	return summary, err
}

// LoadLatestDetailed reads latest-detailed.json.
func (s *Store) LoadLatestDetailed() ([]RunAnalysis, error) {
	var analyses []RunAnalysis
	err := s.readJSON("latest-detailed.json", &analyses)
	return analyses, err
}

func (s *Store) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
