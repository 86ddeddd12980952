package scenarios

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kilianp07/tripwindow/core/model"
)

func TestScenario(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no scenario files")
	}
	for _, f := range files {
		sc, err := Load(f)
		if err != nil {
			t.Fatalf("load %s: %v", f, err)
		}
		t.Run(sc.Name, func(t *testing.T) {
			RunScenario(t, sc)
		})
	}
}

func TestEvaluateRecordsMetrics(t *testing.T) {
	sc, err := Load(filepath.Join("testdata", "two_people.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	reg := prometheus.NewRegistry()
	if _, err := Evaluate(sc, reg); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	n, err := testutil.GatherAndCount(reg, "tripwindow_searches_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one searches series, got %d", n)
	}
}

func TestMismatches(t *testing.T) {
	sc := &Scenario{Name: "x", Expected: Expected{Candidates: []CandidateDef{{Date: "2023-08-01", Count: 2, People: []string{"A", "B"}}}}}
	res := model.Result{Candidates: []model.Candidate{{Count: 1, People: []string{"A"}}}}
	if got := Mismatches(sc, res); len(got) != 3 {
		t.Fatalf("expected date, count and people mismatches, got %v", got)
	}
	if got := Mismatches(&Scenario{Expected: Expected{Empty: true}}, res); len(got) != 1 {
		t.Fatalf("expected emptiness mismatch, got %v", got)
	}
}

func TestEvaluateInvalid(t *testing.T) {
	sc := &Scenario{
		Name:   "bad",
		Table:  TableDef{Start: "2023-08-01", Persons: []string{"A"}, Rows: [][]float64{{1}}},
		Search: SearchDef{Persons: []string{"Z"}, Length: "1 day"},
	}
	if _, err := Evaluate(sc, prometheus.NewRegistry()); err == nil {
		t.Fatal("expected unknown person error")
	}
	sc.Search = SearchDef{Persons: []string{"A"}, Length: "soon"}
	if _, err := Evaluate(sc, prometheus.NewRegistry()); err == nil {
		t.Fatal("expected length error")
	}
}

func TestLoadInvalid(t *testing.T) {
	if _, err := Load("no-file.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
	tmp, err := os.CreateTemp(t.TempDir(), "bad*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmp.WriteString(":"); err != nil {
		t.Fatal(err)
	}
	if err := tmp.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tmp.Name()); err == nil {
		t.Fatal("expected unmarshal error")
	}
}
