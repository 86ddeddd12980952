package search

import (
	"fmt"
	"time"

	"github.com/kilianp07/tripwindow/core/duration"
	"github.com/kilianp07/tripwindow/core/model"
)

// Config holds the search defaults used when the user skips a question.
type Config struct {
	// Top is the number of ranked windows returned.
	Top int `json:"top"`
	// DefaultLength is the window length phrase used when none is given.
	DefaultLength string `json:"default_length"`
	// DefaultStart is the earliest start date used when none is given.
	// Empty means the first date of the table.
	DefaultStart string `json:"default_start"`
	// Exclude lists people left out of the default person list.
	Exclude []string `json:"exclude"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Top <= 0 {
		c.Top = DefaultTop
	}
	if c.DefaultLength == "" {
		c.DefaultLength = "6 days"
	}
}

// Validate checks the default phrases can be parsed.
func (c Config) Validate() error {
	if _, err := duration.Parse(c.DefaultLength); err != nil {
		return fmt.Errorf("default_length: %w", err)
	}
	if c.DefaultStart != "" {
		if _, err := time.Parse(model.DateLayout, c.DefaultStart); err != nil {
			return fmt.Errorf("default_start: %w", err)
		}
	}
	return nil
}

// Length returns the parsed default window length.
func (c Config) Length() model.WindowLength {
	l, err := duration.Parse(c.DefaultLength)
	if err != nil {
		return model.WindowLength{Amount: 6, Unit: model.Days}
	}
	return l
}

// Defaults builds the constraints used when the user skips the questions:
// every person of t except the excluded ones, the first of them necessary,
// the default length and the default start. A default start outside t
// falls back to the first date. missing lists excluded names t does not
// have.
func (c Config) Defaults(t *model.Table) (cons model.Constraints, missing []string) {
	excluded := make(map[string]bool, len(c.Exclude))
	for _, name := range c.Exclude {
		excluded[name] = true
		if !t.HasPerson(name) {
			missing = append(missing, name)
		}
	}
	for _, p := range t.Persons() {
		if !excluded[p] {
			cons.Persons = append(cons.Persons, p)
		}
	}
	if len(cons.Persons) > 0 {
		cons.Necessary = []string{cons.Persons[0]}
	}
	cons.Start = t.First()
	if c.DefaultStart != "" {
		if d, err := time.Parse(model.DateLayout, c.DefaultStart); err == nil && t.Contains(d) {
			cons.Start = d
		}
	}
	cons.Length = c.Length()
	return cons, missing
}
