package scenarios

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/tripwindow/core/model"
	"github.com/kilianp07/tripwindow/core/search"
	"github.com/kilianp07/tripwindow/infra/logger"
	"github.com/kilianp07/tripwindow/infra/metrics"
)

// Evaluate runs the search of sc through an engine recording into reg.
func Evaluate(sc *Scenario, reg prometheus.Registerer) (model.Result, error) {
	t, err := sc.Table.ToModel()
	if err != nil {
		return model.Result{}, fmt.Errorf("table: %w", err)
	}
	c, err := sc.Search.ToModel(t)
	if err != nil {
		return model.Result{}, fmt.Errorf("search: %w", err)
	}
	if err := c.Validate(t); err != nil {
		return model.Result{}, fmt.Errorf("constraints: %w", err)
	}
	rec, err := metrics.NewPromRecorderWithRegistry(reg)
	if err != nil {
		return model.Result{}, fmt.Errorf("prom recorder: %w", err)
	}
	return search.NewEngine(t, sc.Search.Top, rec, logger.NopLogger{}).Search(c), nil
}

// Mismatches compares res with the expectation of sc.
func Mismatches(sc *Scenario, res model.Result) []string {
	var out []string
	if sc.Expected.Empty != res.Empty() {
		out = append(out, fmt.Sprintf("expected empty=%v, got %d candidates", sc.Expected.Empty, len(res.Candidates)))
	}
	if len(sc.Expected.Candidates) == 0 {
		return out
	}
	if len(sc.Expected.Candidates) != len(res.Candidates) {
		return append(out, fmt.Sprintf("expected %d candidates, got %d", len(sc.Expected.Candidates), len(res.Candidates)))
	}
	for i, want := range sc.Expected.Candidates {
		got := res.Candidates[i]
		if d := got.Start.Format(model.DateLayout); d != want.Date {
			out = append(out, fmt.Sprintf("#%d: expected date %s, got %s", i+1, want.Date, d))
		}
		if got.Count != want.Count {
			out = append(out, fmt.Sprintf("#%d: expected count %d, got %d", i+1, want.Count, got.Count))
		}
		if want.People != nil && fmt.Sprint(got.People) != fmt.Sprint(want.People) {
			out = append(out, fmt.Sprintf("#%d: expected people %v, got %v", i+1, want.People, got.People))
		}
	}
	return out
}

func RunScenario(t *testing.T, sc *Scenario) {
	res, err := Evaluate(sc, prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("scenario %s: %v", sc.Name, err)
	}
	for _, m := range Mismatches(sc, res) {
		t.Errorf("scenario %s: %s", sc.Name, m)
	}
}
