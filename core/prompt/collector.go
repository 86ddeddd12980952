package prompt

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kilianp07/tripwindow/core/duration"
	"github.com/kilianp07/tripwindow/core/model"
	"github.com/kilianp07/tripwindow/core/search"
)

// Loader reads an availability table from a path.
type Loader func(path string) (*model.Table, error)

// Collector runs the question dialogue that produces a search.
type Collector struct {
	p   *Prompter
	cfg search.Config
}

// NewCollector returns a Collector asking through p. Skipped questions
// take their answers from cfg.
func NewCollector(p *Prompter, cfg search.Config) *Collector {
	return &Collector{p: p, cfg: cfg}
}

// ChooseFile asks whether to load a custom file from dir. Skipping loads
// def from dir. Custom files that fail to load are asked for again; a
// failing default file is returned as an error.
func (c *Collector) ChooseFile(dir, def string, load Loader) (*model.Table, string, error) {
	custom, err := c.p.Confirm("Do you want to use a custom .csv (Enter to skip)?")
	if err != nil {
		return nil, "", err
	}
	if !custom {
		path := filepath.Join(dir, def)
		t, err := load(path)
		if err != nil {
			return nil, "", fmt.Errorf("load default file: %w", err)
		}
		return t, path, nil
	}
	for {
		name, err := c.p.AskUntil("What file do you want to load?", ValidateFile)
		if err != nil {
			return nil, "", err
		}
		path := filepath.Join(dir, name)
		t, err := load(path)
		if err != nil {
			c.p.Say("Your file must be a readable .csv in the %s folder (%v)", dir, err)
			continue
		}
		return t, path, nil
	}
}

// Collect asks for the constraints of a search over t. Skipping the first
// question uses the configured defaults.
func (c *Collector) Collect(t *model.Table) (model.Constraints, error) {
	custom, err := c.p.Confirm("Do you want to specify persons and times? (choose from used csv or press Enter to use defaults)")
	if err != nil {
		return model.Constraints{}, err
	}
	if !custom {
		cons, missing := c.cfg.Defaults(t)
		if len(missing) > 0 {
			c.p.Say("Warning: You're not working with the default dataframe!")
		}
		return cons, nil
	}

	necessary, persons, err := c.buddies(t)
	if err != nil {
		return model.Constraints{}, err
	}
	length, err := c.length(t)
	if err != nil {
		return model.Constraints{}, err
	}
	start, err := c.start(t)
	if err != nil {
		return model.Constraints{}, err
	}
	return model.Constraints{
		Necessary: necessary,
		Persons:   persons,
		Start:     start,
		Length:    length,
	}, nil
}

func (c *Collector) buddies(t *model.Table) (necessary, persons []string, err error) {
	all := t.Persons()
	c.p.Say("\nTravel buddies are: %v\n", all)

	answer, err := c.p.AskUntil("How many Travel Buddies do you want to add to go on vacation?", ValidateCount(1, len(all)))
	if err != nil {
		return nil, nil, err
	}
	total, _ := ParseCount(answer, 1, len(all))

	answer, err = c.p.AskUntil("How many people of those need be present?", ValidateCount(0, total))
	if err != nil {
		return nil, nil, err
	}
	required, _ := ParseCount(answer, 0, total)
	c.p.Say("")

	c.p.Say("Please add names one after the other:")
	for len(persons) < total {
		question := "Who else should be added that doesn't necessarily need to be there?"
		if len(persons) < required {
			question = "Who is necessary in the planning ?"
		}
		name, err := c.p.AskUntil(question, func(s string) error { return ValidatePerson(t, s, persons) })
		if err != nil {
			return nil, nil, err
		}
		if len(persons) < required {
			necessary = append(necessary, name)
		}
		persons = append(persons, name)
	}
	c.p.Say("")
	return necessary, persons, nil
}

func (c *Collector) length(t *model.Table) (model.WindowLength, error) {
	def := c.cfg.Length()
	c.p.Say("The total timeframe available is: %s to %s",
		t.First().Format(model.DateLayout), t.Last().Format(model.DateLayout))
	answer, err := c.p.AskUntil(
		fmt.Sprintf("For how long should the people be available (Enter to use default (%s))?", def),
		func(s string) error {
			if s == "" {
				return nil
			}
			return ValidateDuration(s)
		})
	if err != nil {
		return model.WindowLength{}, err
	}
	c.p.Say("")
	if answer == "" {
		return def, nil
	}
	return duration.Parse(answer)
}

func (c *Collector) start(t *model.Table) (time.Time, error) {
	answer, err := c.p.AskUntil("What is the starting date I should start searching from (Enter to use default)?",
		func(s string) error {
			if s == "" {
				return nil
			}
			return ValidateStart(t, s)
		})
	if err != nil {
		return time.Time{}, err
	}
	c.p.Say("")
	if answer == "" {
		cons, _ := c.cfg.Defaults(t)
		return cons.Start, nil
	}
	return ParseStart(t, answer)
}
