// Package history keeps an append-only log of analysis summaries on
// disk, keyed by timestamp. It belongs to the CLI layer; the engine
// itself holds no state between requests.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexiusacademia/gobeam/internal/engine"
)

// Entry is one recorded analysis summary. The full diagram is not
// persisted; re-running the engine with the same inputs reproduces it.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`

	Span      float64 `json:"span_m"`
	Support   string  `json:"support"`
	Load      string  `json:"load"`
	Magnitude float64 `json:"magnitude"`
	Position  float64 `json:"position_m,omitempty"`
	Section   string  `json:"section"`

	MaxMoment     float64 `json:"max_moment_knm"`
	MaxShear      float64 `json:"max_shear_kn"`
	MaxStress     float64 `json:"max_stress_mpa"`
	MaxDeflection float64 `json:"max_deflection_mm"`
}

// NewEntry builds a summary entry from a spec and its result, stamped
// with the current time.
func NewEntry(spec engine.BeamSpec, result *engine.BeamResult) Entry {
	return Entry{
		Timestamp:     time.Now().UTC(),
		Span:          spec.Span,
		Support:       spec.Support.String(),
		Load:          spec.Load.String(),
		Magnitude:     spec.Magnitude,
		Position:      spec.Position,
		Section:       spec.Section.Shape.String(),
		MaxMoment:     result.MaxMoment,
		MaxShear:      result.MaxShear,
		MaxStress:     result.MaxStress,
		MaxDeflection: result.MaxDeflection,
	}
}

// Store is a file-backed append-only log.
type Store struct {
	path string
}

// NewStore opens (or prepares to create) the log at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("history path must not be empty")
	}
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create history dir: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// DefaultPath returns the per-user history location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".gobeam", "history.json"), nil
}

// Append adds one entry to the log. The log is rewritten whole, so the
// store assumes a single writer at a time; concurrent appends from
// separate processes can lose an entry to the last writer.
func (s *Store) Append(e Entry) error {
	entries, err := s.List()
	if err != nil {
		return err
	}
	entries = append(entries, e)

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// List returns all recorded entries, oldest first. A missing file is an
// empty log.
func (s *Store) List() ([]Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	return entries, nil
}
