// Package table loads availability tables from CSV files.
//
// The first column holds the dates and the header row the person names:
//
//	date,Alice,Bob
//	2023-08-01,1,1
//	2023-08-02,1,
//
// Blank cells count as 0 (unavailable).
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/kilianp07/tripwindow/core/model"
)

// ErrMalformed wraps every error caused by the file content.
var ErrMalformed = errors.New("malformed availability file")

// dateLayouts lists the accepted formats of the date column.
var dateLayouts = []string{
	model.DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"02.01.2006",
}

// Load reads the CSV file at path.
func Load(path string) (*model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

type row struct {
	date    time.Time
	weights []float64
}

// Read parses CSV content into a table. Rows may come in any order; they
// are sorted by date.
func Read(r io.Reader) (*model.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: need a header and at least one row", ErrMalformed)
	}
	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: need a date column and at least one person", ErrMalformed)
	}
	persons := make([]string, len(header)-1)
	for i, h := range header[1:] {
		persons[i] = strings.TrimSpace(h)
	}

	rows := make([]row, 0, len(records)-1)
	for n, rec := range records[1:] {
		line := n + 2
		d, err := parseDate(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		weights := make([]float64, len(persons))
		for j := range persons {
			w, err := parseWeight(rec[j+1])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, %s: %v", ErrMalformed, line, persons[j], err)
			}
			weights[j] = w
		}
		rows = append(rows, row{date: d, weights: weights})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].date.Before(rows[j].date) })

	dates := make([]time.Time, len(rows))
	weights := make([][]float64, len(rows))
	for i, r := range rows {
		dates[i] = r.date
		weights[i] = r.weights
	}
	t, err := model.NewTable(dates, persons, weights)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return t, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return model.DateOf(d), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

// parseWeight coerces a cell to a non-negative weight; blank is 0.
func parseWeight(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	w, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if w < 0 {
		return 0, fmt.Errorf("negative weight %v", w)
	}
	return w, nil
}
