package scenarios

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/tripwindow/core/duration"
	"github.com/kilianp07/tripwindow/core/model"
)

// TableDef describes an availability table day by day. Rows hold one
// weight per person; Skip lists dates left out of the table.
type TableDef struct {
	Start   string      `yaml:"start"`
	Persons []string    `yaml:"persons"`
	Rows    [][]float64 `yaml:"rows"`
	Skip    []string    `yaml:"skip,omitempty"`
}

// ToModel builds the table, one date per row starting at Start.
func (d TableDef) ToModel() (*model.Table, error) {
	start, err := time.Parse(model.DateLayout, d.Start)
	if err != nil {
		return nil, fmt.Errorf("table start: %w", err)
	}
	skip := make(map[string]bool, len(d.Skip))
	for _, s := range d.Skip {
		skip[s] = true
	}
	var dates []time.Time
	var rows [][]float64
	for i, r := range d.Rows {
		day := start.AddDate(0, 0, i)
		if skip[day.Format(model.DateLayout)] {
			continue
		}
		dates = append(dates, day)
		rows = append(rows, r)
	}
	return model.NewTable(dates, d.Persons, rows)
}

// SearchDef is the searched constraint set.
type SearchDef struct {
	Persons   []string `yaml:"persons"`
	Necessary []string `yaml:"necessary"`
	Start     string   `yaml:"start"`
	Length    string   `yaml:"length"`
	Top       int      `yaml:"top"`
}

// ToModel resolves the constraints. An empty start is the first date of t.
func (s SearchDef) ToModel(t *model.Table) (model.Constraints, error) {
	l, err := duration.Parse(s.Length)
	if err != nil {
		return model.Constraints{}, err
	}
	start := t.First()
	if s.Start != "" {
		if start, err = time.Parse(model.DateLayout, s.Start); err != nil {
			return model.Constraints{}, fmt.Errorf("search start: %w", err)
		}
	}
	return model.Constraints{Necessary: s.Necessary, Persons: s.Persons, Start: start, Length: l}, nil
}

// CandidateDef is one expected ranked window.
type CandidateDef struct {
	Date   string   `yaml:"date"`
	Count  int      `yaml:"count"`
	People []string `yaml:"people"`
}

type Expected struct {
	Empty      bool           `yaml:"empty"`
	Candidates []CandidateDef `yaml:"candidates"`
}

type Scenario struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Table       TableDef  `yaml:"table"`
	Search      SearchDef `yaml:"search"`
	Expected    Expected  `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("%s: scenario has no name", path)
	}
	return &sc, nil
}
