package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/kilianp07/tripwindow/core/model"
)

// Document is the JSON form of one search outcome.
type Document struct {
	RunID      string
	Source     string
	Length     string
	Persons    []string
	Necessary  []string
	Candidates []model.Candidate
}

type candidateJSON struct {
	Date   string   `json:"date"`
	Count  int      `json:"count"`
	Weight float64  `json:"weight"`
	People []string `json:"people"`
}

type documentJSON struct {
	RunID      string          `json:"run_id,omitempty"`
	Source     string          `json:"source,omitempty"`
	Length     string          `json:"length"`
	Persons    []string        `json:"persons"`
	Necessary  []string        `json:"necessary"`
	Candidates []candidateJSON `json:"candidates"`
}

// WriteJSON writes doc to w as indented JSON with plain dates.
func WriteJSON(w io.Writer, doc Document) error {
	out := documentJSON{
		RunID:      doc.RunID,
		Source:     doc.Source,
		Length:     doc.Length,
		Persons:    nonNil(doc.Persons),
		Necessary:  nonNil(doc.Necessary),
		Candidates: make([]candidateJSON, 0, len(doc.Candidates)),
	}
	for _, c := range doc.Candidates {
		out.Candidates = append(out.Candidates, candidateJSON{
			Date:   c.Start.Format(model.DateLayout),
			Count:  c.Count,
			Weight: c.Weight,
			People: nonNil(c.People),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteCSV writes the ranked candidates to w, one row each, people
// separated by semicolons.
func WriteCSV(w io.Writer, cands []model.Candidate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"rank", "date", "count", "weight", "people"}); err != nil {
		return err
	}
	for i, c := range cands {
		rec := []string{
			strconv.Itoa(i + 1),
			c.Start.Format(model.DateLayout),
			strconv.Itoa(c.Count),
			strconv.FormatFloat(c.Weight, 'f', -1, 64),
			strings.Join(c.People, ";"),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
