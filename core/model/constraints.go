package model

import (
	"errors"
	"fmt"
	"time"
)

// Constraints describe one search: who must be free, who should be free,
// the earliest start and the window length.
type Constraints struct {
	Necessary []string     `json:"necessary"`
	Persons   []string     `json:"persons"`
	Start     time.Time    `json:"start"`
	Length    WindowLength `json:"length"`
}

// Validate checks the preconditions of a search against t. Boundary layers
// call it before searching; the search itself does not re-check.
func (c Constraints) Validate(t *Table) error {
	if len(c.Persons) == 0 {
		return errors.New("at least one person is required")
	}
	seen := make(map[string]struct{}, len(c.Persons))
	for _, p := range c.Persons {
		if !t.HasPerson(p) {
			return fmt.Errorf("%w: %s", ErrUnknownPerson, p)
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("person %s named twice", p)
		}
		seen[p] = struct{}{}
	}
	for _, p := range c.Necessary {
		if _, ok := seen[p]; !ok {
			return fmt.Errorf("necessary person %s is not among the persons", p)
		}
	}
	if !t.Contains(c.Start) {
		return fmt.Errorf("start date %s is not in the table (%s to %s)",
			c.Start.Format(DateLayout), t.First().Format(DateLayout), t.Last().Format(DateLayout))
	}
	return c.Length.Validate()
}

// WithLength returns a copy of c using length l.
func (c Constraints) WithLength(l WindowLength) Constraints {
	c.Length = l
	return c
}
