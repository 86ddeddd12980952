// Package rerun retries empty searches with shorter windows.
package rerun

import (
	"github.com/kilianp07/tripwindow/core/model"
)

// Searcher runs one search.
type Searcher interface {
	Search(c model.Constraints) model.Result
}

// Confirmer asks whether to retry with a shorter window.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(question string) (bool, error)

// Confirm calls f.
func (f ConfirmFunc) Confirm(question string) (bool, error) { return f(question) }

// Question is asked after each empty result.
const Question = "Should I re-run the search with a smaller time window (Enter to skip)?"

// Controller shortens the window one unit at a time until a search
// returns candidates, the user declines or the length would drop below 1.
type Controller struct {
	searcher  Searcher
	confirmer Confirmer
	// OnAttempt, when set, is called before every retry with the new length.
	OnAttempt func(model.WindowLength)
}

// New returns a Controller. A nil confirmer never retries.
func New(s Searcher, c Confirmer) *Controller {
	return &Controller{searcher: s, confirmer: c}
}

// Run searches with c and retries on empty results. It returns the last
// result together with the length that produced it. An error is only
// returned when the confirmer fails; the result of the last search is
// still valid in that case.
func (ctl *Controller) Run(c model.Constraints) (model.Result, model.WindowLength, error) {
	length := c.Length
	res := ctl.searcher.Search(c)
	for res.Empty() && ctl.confirmer != nil {
		next := length.Decrement()
		if next.Amount < 1 {
			break
		}
		ok, err := ctl.confirmer.Confirm(Question)
		if err != nil {
			return res, length, err
		}
		if !ok {
			break
		}
		length = next
		if ctl.OnAttempt != nil {
			ctl.OnAttempt(length)
		}
		res = ctl.searcher.Search(c.WithLength(length))
	}
	return res, length, nil
}
