package search

import (
	"time"

	"github.com/kilianp07/tripwindow/core/model"
)

// SearchEvent summarises one search for observability purposes.
type SearchEvent struct {
	Persons   int
	Necessary int
	Length    model.WindowLength
	Scanned   int
	Admitted  int
	Returned  int
	BestCount int
	Duration  time.Duration
	Time      time.Time
}

// Found reports whether the search returned at least one window.
func (e SearchEvent) Found() bool { return e.Returned > 0 }

// Recorder records search events.
type Recorder interface {
	RecordSearch(ev SearchEvent) error
}

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) RecordSearch(SearchEvent) error { return nil }
