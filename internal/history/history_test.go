package history

import (
	"path/filepath"
	"testing"
	"time"
)

func TestStoreAppendAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beams", "history.json")
	store, err := NewStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("list empty: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(entries))
	}

	first := Entry{
		Timestamp: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
		Span:      10,
		Support:   "simply supported",
		Load:      "point load",
		Magnitude: 100,
		Position:  5,
		Section:   "rectangular",
		MaxMoment: 250,
		MaxShear:  50,
	}
	if err := store.Append(first); err != nil {
		t.Fatalf("append first: %v", err)
	}

	second := first
	second.Timestamp = second.Timestamp.Add(time.Hour)
	second.Magnitude = 120
	second.MaxMoment = 300
	if err := store.Append(second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	entries, err = store.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if !entries[0].Timestamp.Before(entries[1].Timestamp) {
		t.Fatalf("entries out of order: %v, %v", entries[0].Timestamp, entries[1].Timestamp)
	}
	if entries[1].MaxMoment != 300 {
		t.Fatalf("second entry max moment = %v", entries[1].MaxMoment)
	}
}

func TestNewStoreRejectsEmptyPath(t *testing.T) {
	if _, err := NewStore(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
