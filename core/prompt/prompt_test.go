package prompt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/tripwindow/core/model"
	"github.com/kilianp07/tripwindow/core/search"
)

func aug(d int) time.Time { return time.Date(2023, 8, d, 0, 0, 0, 0, time.UTC) }

func testTable(t *testing.T) *model.Table {
	t.Helper()
	dates := make([]time.Time, 10)
	weights := make([][]float64, 10)
	for i := range dates {
		dates[i] = aug(i + 1)
		weights[i] = []float64{1, 1, 1, 0}
	}
	tbl, err := model.NewTable(dates, []string{"Anna", "Ben", "Clara", "Alberich"}, weights)
	require.NoError(t, err)
	return tbl
}

func defaults() search.Config {
	c := search.Config{Exclude: []string{"Alberich"}}
	c.SetDefaults()
	return c
}

func newPrompter(input string) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestValidators(t *testing.T) {
	tbl := testTable(t)

	assert.NoError(t, ValidateFile("trip.csv"))
	assert.ErrorIs(t, ValidateFile("trip.xlsx"), ErrNotCSV)

	assert.NoError(t, ValidatePerson(tbl, "Anna", nil))
	assert.ErrorIs(t, ValidatePerson(tbl, "Zed", nil), ErrUnknownPerson)
	assert.ErrorIs(t, ValidatePerson(tbl, "Anna", []string{"Anna"}), ErrDuplicatePerson)

	d, err := ParseStart(tbl, "2023-08-04")
	require.NoError(t, err)
	assert.Equal(t, aug(4), d)
	assert.ErrorIs(t, ValidateStart(tbl, "04.08.2023"), ErrDateFormat)
	assert.ErrorIs(t, ValidateStart(tbl, "2023-09-01"), ErrDateOutOfRange)

	assert.NoError(t, ValidateDuration("2 weeks"))
	assert.ErrorIs(t, ValidateDuration("abc"), ErrDurationFormat)

	n, err := ParseCount(" 3 ", 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.ErrorIs(t, ValidateCount(1, 4)("three"), ErrNotNumber)
	err = ValidateCount(1, 4)("5")
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "from 1 to 4")
}

func TestPrompterAsk(t *testing.T) {
	p, out := newPrompter("  hello \nlast")
	a, err := p.Ask("Name?")
	require.NoError(t, err)
	assert.Equal(t, "hello", a)
	a, err = p.Ask("Again?")
	require.NoError(t, err)
	assert.Equal(t, "last", a)
	_, err = p.Ask("More?")
	assert.ErrorIs(t, err, ErrAborted)
	assert.Equal(t, "Name? Again? More? ", out.String())
}

func TestPrompterAskUntil(t *testing.T) {
	p, out := newPrompter("x\n7\n2\n")
	a, err := p.AskUntil("How many?", ValidateCount(1, 5))
	require.NoError(t, err)
	assert.Equal(t, "2", a)
	assert.Contains(t, out.String(), string(ErrNotNumber))
	assert.Contains(t, out.String(), string(ErrOutOfRange))
}

func TestPrompterConfirm(t *testing.T) {
	p, _ := newPrompter("\ny\n")
	ok, err := p.Confirm("Again?")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = p.Confirm("Again?")
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = p.Confirm("Again?")
	assert.ErrorIs(t, err, ErrAborted)
}

func TestCollectDefaults(t *testing.T) {
	tbl := testTable(t)
	p, out := newPrompter("\n")
	cons, err := NewCollector(p, defaults()).Collect(tbl)
	require.NoError(t, err)
	assert.Equal(t, []string{"Anna", "Ben", "Clara"}, cons.Persons)
	assert.Equal(t, []string{"Anna"}, cons.Necessary)
	assert.Equal(t, aug(1), cons.Start)
	assert.Equal(t, model.WindowLength{Amount: 6, Unit: model.Days}, cons.Length)
	assert.NotContains(t, out.String(), "Warning")
}

func TestCollectDefaultsWarnsOnForeignTable(t *testing.T) {
	tbl := testTable(t)
	cfg := defaults()
	cfg.Exclude = []string{"Zed"}
	p, out := newPrompter("\n")
	cons, err := NewCollector(p, cfg).Collect(tbl)
	require.NoError(t, err)
	assert.Len(t, cons.Persons, 4)
	assert.Contains(t, out.String(), "Warning: You're not working with the default dataframe!")
}

func TestCollectCustom(t *testing.T) {
	tbl := testTable(t)
	input := strings.Join([]string{
		"yes",
		"two", "3",
		"5", "1",
		"Zed", "Clara",
		"Clara", "Anna",
		"Ben",
		"a while", "2 weeks",
		"2023-13-01", "2023-09-01", "2023-08-03",
	}, "\n") + "\n"
	p, out := newPrompter(input)
	cons, err := NewCollector(p, defaults()).Collect(tbl)
	require.NoError(t, err)

	assert.Equal(t, []string{"Clara"}, cons.Necessary)
	assert.Equal(t, []string{"Clara", "Anna", "Ben"}, cons.Persons)
	assert.Equal(t, model.WindowLength{Amount: 2, Unit: model.Weeks}, cons.Length)
	assert.Equal(t, aug(3), cons.Start)
	require.NoError(t, cons.Validate(tbl))

	text := out.String()
	for _, want := range []string{
		"Travel buddies are: [Anna Ben Clara Alberich]",
		string(ErrNotNumber),
		string(ErrOutOfRange),
		string(ErrUnknownPerson),
		string(ErrDuplicatePerson),
		string(ErrDurationFormat),
		string(ErrDateFormat),
		string(ErrDateOutOfRange),
		"The total timeframe available is: 2023-08-01 to 2023-08-10",
		"Who is necessary in the planning ?",
		"Who else should be added that doesn't necessarily need to be there?",
	} {
		assert.Contains(t, text, want)
	}
}

func TestCollectCustomUsesDefaultLengthAndStart(t *testing.T) {
	tbl := testTable(t)
	p, out := newPrompter("y\n1\n0\nBen\n\n\n")
	cons, err := NewCollector(p, defaults()).Collect(tbl)
	require.NoError(t, err)
	assert.Empty(t, cons.Necessary)
	assert.Equal(t, []string{"Ben"}, cons.Persons)
	assert.Equal(t, 6, cons.Length.Amount)
	assert.Equal(t, aug(1), cons.Start)
	assert.Contains(t, out.String(), "Enter to use default (6 days)")
}

func TestCollectAborted(t *testing.T) {
	tbl := testTable(t)
	p, _ := newPrompter("y\n2\n")
	_, err := NewCollector(p, defaults()).Collect(tbl)
	assert.ErrorIs(t, err, ErrAborted)
}

func TestChooseFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.csv"), []byte("x"), 0o600))
	tbl := testTable(t)
	var tried []string
	load := func(path string) (*model.Table, error) {
		tried = append(tried, path)
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		return tbl, nil
	}

	p, out := newPrompter("y\nmine.txt\nother.csv\nmine.csv\n")
	got, path, err := NewCollector(p, defaults()).ChooseFile(dir, "vacations.csv", load)
	require.NoError(t, err)
	assert.Same(t, tbl, got)
	assert.Equal(t, filepath.Join(dir, "mine.csv"), path)
	assert.Equal(t, []string{filepath.Join(dir, "other.csv"), filepath.Join(dir, "mine.csv")}, tried)
	assert.Contains(t, out.String(), string(ErrNotCSV))
}

func TestChooseFileDefault(t *testing.T) {
	dir := t.TempDir()
	p, _ := newPrompter("\n")
	_, _, err := NewCollector(p, defaults()).ChooseFile(dir, "vacations.csv", func(string) (*model.Table, error) {
		return nil, os.ErrNotExist
	})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
