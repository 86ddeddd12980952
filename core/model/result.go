package model

import "time"

// Candidate is one admitted window of a search.
type Candidate struct {
	Start  time.Time `json:"date"`
	Count  int       `json:"count"`
	Weight float64   `json:"weight"`
	People []string  `json:"people"`
}

// Result holds the best candidates of a search, best first.
type Result struct {
	Candidates []Candidate `json:"candidates"`
}

// Empty reports whether no window satisfied the constraints.
func (r Result) Empty() bool { return len(r.Candidates) == 0 }

// Best returns the top candidate. ok is false for an empty result.
func (r Result) Best() (Candidate, bool) {
	if r.Empty() {
		return Candidate{}, false
	}
	return r.Candidates[0], true
}
