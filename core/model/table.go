package model

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"
)

// DateLayout is the ISO-8601 calendar date format used for table rows.
const DateLayout = "2006-01-02"

// ErrUnknownPerson is returned when a name is not a column of the table.
var ErrUnknownPerson = errors.New("unknown person")

// Table holds availability weights indexed by date (rows) and person
// (columns). A weight of 0 means the person is unavailable on that day.
// A Table is never mutated once built.
type Table struct {
	dates   []time.Time
	persons []string
	index   map[string]int
	data    *mat.Dense
}

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewTable builds a Table from strictly ascending dates, distinct person
// names and one weight row per date.
func NewTable(dates []time.Time, persons []string, weights [][]float64) (*Table, error) {
	if len(dates) == 0 {
		return nil, errors.New("table has no dates")
	}
	if len(persons) == 0 {
		return nil, errors.New("table has no persons")
	}
	if len(weights) != len(dates) {
		return nil, fmt.Errorf("got %d weight rows for %d dates", len(weights), len(dates))
	}
	t := &Table{
		dates:   make([]time.Time, len(dates)),
		persons: append([]string(nil), persons...),
		index:   make(map[string]int, len(persons)),
	}
	for j, p := range persons {
		if p == "" {
			return nil, fmt.Errorf("empty person name in column %d", j+1)
		}
		if _, dup := t.index[p]; dup {
			return nil, fmt.Errorf("duplicate person %q", p)
		}
		t.index[p] = j
	}
	raw := make([]float64, 0, len(dates)*len(persons))
	for i, d := range dates {
		d = DateOf(d)
		if i > 0 && !d.After(t.dates[i-1]) {
			return nil, fmt.Errorf("dates must be strictly ascending: %s follows %s",
				d.Format(DateLayout), t.dates[i-1].Format(DateLayout))
		}
		t.dates[i] = d
		row := weights[i]
		if len(row) != len(persons) {
			return nil, fmt.Errorf("row %s has %d values, want %d", d.Format(DateLayout), len(row), len(persons))
		}
		for j, w := range row {
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, fmt.Errorf("invalid weight %v for %s on %s", w, persons[j], d.Format(DateLayout))
			}
		}
		raw = append(raw, row...)
	}
	t.data = mat.NewDense(len(dates), len(persons), raw)
	return t, nil
}

// Persons returns a copy of the column names in table order.
func (t *Table) Persons() []string {
	return append([]string(nil), t.persons...)
}

// Len returns the number of dates.
func (t *Table) Len() int { return len(t.dates) }

// First returns the earliest date of the table.
func (t *Table) First() time.Time { return t.dates[0] }

// Last returns the latest date of the table.
func (t *Table) Last() time.Time { return t.dates[len(t.dates)-1] }

// HasPerson reports whether name is a column of the table.
func (t *Table) HasPerson(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Contains reports whether d is one of the table dates.
func (t *Table) Contains(d time.Time) bool {
	d = DateOf(d)
	i := t.search(d)
	return i < len(t.dates) && t.dates[i].Equal(d)
}

// Weight returns the availability weight of person on day d. Days outside
// the table yield 0.
func (t *Table) Weight(d time.Time, person string) (float64, error) {
	j, ok := t.index[person]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPerson, person)
	}
	d = DateOf(d)
	i := t.search(d)
	if i >= len(t.dates) || !t.dates[i].Equal(d) {
		return 0, nil
	}
	return t.data.At(i, j), nil
}

// Column returns a copy of the weights of person, one per date.
func (t *Table) Column(person string) ([]float64, error) {
	j, ok := t.index[person]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPerson, person)
	}
	return mat.Col(nil, j, t.data), nil
}

// RowRange returns the half-open row interval [lo, hi) holding the dates
// that fall inside the closed interval [from, to].
func (t *Table) RowRange(from, to time.Time) (int, int) {
	lo := t.search(DateOf(from))
	hi := t.search(DateOf(to).AddDate(0, 0, 1))
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func (t *Table) search(d time.Time) int {
	return sort.Search(len(t.dates), func(i int) bool { return !t.dates[i].Before(d) })
}
