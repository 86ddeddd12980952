// Package search finds the date windows in which the most people of a group
// are jointly available.
package search

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/tripwindow/core/logger"
	"github.com/kilianp07/tripwindow/core/model"
)

// DefaultTop is the number of candidates returned when none is configured.
const DefaultTop = 3

type column struct {
	name    string
	weights []float64
}

type stats struct {
	scanned  int
	admitted int
}

// Solve enumerates every start date from c.Start up to the last date of t
// minus the window span and returns the topN best admitted windows.
//
// For each window and person the weights of the covered days are
// multiplied, so a single unavailable day removes the person from that
// window. A window is admitted when all necessary persons are available
// and at least one person is. Candidates are ranked by count then weight,
// both descending; ties keep the earliest start first.
//
// Solve assumes c was validated against t and never modifies t. A topN
// of zero or less uses DefaultTop.
func Solve(t *model.Table, c model.Constraints, topN int) model.Result {
	res, _ := solve(t, c, topN)
	return res
}

func solve(t *model.Table, c model.Constraints, topN int) (model.Result, stats) {
	var st stats
	if topN <= 0 {
		topN = DefaultTop
	}
	if c.Length.Amount < 1 {
		return model.Result{}, st
	}
	span := c.Length.SpanDays()
	if span < 0 || span > daysBetween(c.Start, t.Last()) {
		return model.Result{}, st
	}
	cols := restrict(t, c.Persons)
	lastStart := t.Last().AddDate(0, 0, -span)

	var cands []model.Candidate
	eachDay(c.Start, lastStart, func(start time.Time) {
		lo, hi := t.RowRange(start, start.AddDate(0, 0, span))
		if lo == hi {
			return
		}
		st.scanned++
		people, weights := windowAvailability(cols, lo, hi)
		if len(people) == 0 || !containsAll(people, c.Necessary) {
			return
		}
		st.admitted++
		cands = append(cands, model.Candidate{
			Start:  start,
			Count:  len(people),
			Weight: floats.Sum(weights),
			People: people,
		})
	})

	rank(cands)
	if len(cands) > topN {
		cands = cands[:topN]
	}
	return model.Result{Candidates: cands}, st
}

// restrict keeps the columns of persons, in the given order. Unknown
// persons get no weights and are never available.
func restrict(t *model.Table, persons []string) []column {
	cols := make([]column, 0, len(persons))
	for _, p := range persons {
		w, _ := t.Column(p)
		cols = append(cols, column{name: p, weights: w})
	}
	return cols
}

// windowAvailability returns the persons whose weight product over rows
// [lo, hi) is nonzero, together with those products.
func windowAvailability(cols []column, lo, hi int) ([]string, []float64) {
	var people []string
	var weights []float64
	for _, col := range cols {
		if col.weights == nil {
			continue
		}
		p := floats.Prod(col.weights[lo:hi])
		if p == 0 {
			continue
		}
		people = append(people, col.name)
		weights = append(weights, p)
	}
	return people, weights
}

// eachDay calls fn for every calendar day from from to to, both inclusive.
func eachDay(from, to time.Time, fn func(time.Time)) {
	end := model.DateOf(to)
	for d := model.DateOf(from); !d.After(end); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// daysBetween counts the calendar days from from to to; negative when to
// comes first.
func daysBetween(from, to time.Time) int {
	return int(model.DateOf(to).Sub(model.DateOf(from)).Hours() / 24)
}

func containsAll(set, required []string) bool {
	for _, r := range required {
		found := false
		for _, s := range set {
			if s == r {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func rank(cands []model.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Count != cands[j].Count {
			return cands[i].Count > cands[j].Count
		}
		return cands[i].Weight > cands[j].Weight
	})
}

// Engine runs searches over one table and reports each of them.
type Engine struct {
	table    *model.Table
	top      int
	recorder Recorder
	log      logger.Logger
}

// NewEngine returns an Engine searching t. A nil recorder or logger
// disables the corresponding reporting.
func NewEngine(t *model.Table, top int, rec Recorder, log logger.Logger) *Engine {
	if rec == nil {
		rec = NopRecorder{}
	}
	if log == nil {
		log = logger.Nop{}
	}
	return &Engine{table: t, top: top, recorder: rec, log: log}
}

// Table returns the table searched by the engine.
func (e *Engine) Table() *model.Table { return e.table }

// Search runs Solve with the engine table and records the outcome.
func (e *Engine) Search(c model.Constraints) model.Result {
	begin := time.Now()
	res, st := solve(e.table, c, e.top)
	ev := SearchEvent{
		Persons:   len(c.Persons),
		Necessary: len(c.Necessary),
		Length:    c.Length,
		Scanned:   st.scanned,
		Admitted:  st.admitted,
		Returned:  len(res.Candidates),
		Duration:  time.Since(begin),
		Time:      begin,
	}
	if best, ok := res.Best(); ok {
		ev.BestCount = best.Count
	}
	if err := e.recorder.RecordSearch(ev); err != nil {
		e.log.Warnf("record search: %v", err)
	}
	e.log.Debugw("search finished", map[string]any{
		"start":    c.Start.Format(model.DateLayout),
		"length":   c.Length.String(),
		"scanned":  st.scanned,
		"admitted": st.admitted,
		"returned": len(res.Candidates),
	})
	return res
}
