// Package present defines how search results are shown and builds the
// configured presenters.
package present

import (
	"errors"
	"fmt"
	"io"

	"github.com/kilianp07/tripwindow/core/factory"
	"github.com/kilianp07/tripwindow/core/model"
)

// Report is everything a presenter needs to describe one search.
type Report struct {
	Result      model.Result
	Constraints model.Constraints
	// Length is the window length that produced Result; it differs from
	// Constraints.Length after shortened retries.
	Length model.WindowLength
	// Top is the number of candidates the search was asked for.
	Top    int
	RunID  string
	Source string
}

// Presenter renders a report.
type Presenter interface {
	Present(w io.Writer, rep Report) error
}

// Notifier is implemented by presenters that also narrate retries.
type Notifier interface {
	Retrying(w io.Writer, l model.WindowLength) error
}

// Registry holds the presenter factories known to the application.
var Registry = factory.NewRegistry[Presenter]()

// Register adds a presenter factory to Registry. It panics on duplicate
// names and is meant to be called from init functions.
func Register(name string, f factory.Factory[Presenter]) {
	if err := Registry.Register(name, f); err != nil {
		panic(err)
	}
}

// Build creates one presenter per configuration entry.
func Build(cfgs []factory.ModuleConfig) ([]Presenter, error) {
	out := make([]Presenter, 0, len(cfgs))
	for i, c := range cfgs {
		p, err := Registry.Create(c)
		if err != nil {
			return nil, fmt.Errorf("presenter %d (%s): %w", i, c.Type, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Multi presents the same report with every presenter in order.
type Multi []Presenter

// Present runs every presenter and joins their errors.
func (m Multi) Present(w io.Writer, rep Report) error {
	var errs []error
	for _, p := range m {
		if err := p.Present(w, rep); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Retrying forwards to the presenters that narrate retries.
func (m Multi) Retrying(w io.Writer, l model.WindowLength) error {
	var errs []error
	for _, p := range m {
		if n, ok := p.(Notifier); ok {
			if err := n.Retrying(w, l); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
