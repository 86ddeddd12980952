package prompt

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kilianp07/tripwindow/core/duration"
	"github.com/kilianp07/tripwindow/core/model"
)

// Reason is a validation failure worded for the user.
type Reason string

func (r Reason) Error() string { return string(r) }

const (
	ErrNotNumber       Reason = "That's not a number, try again!"
	ErrOutOfRange      Reason = "That number doesn't fit!"
	ErrDuplicatePerson Reason = "You already named that person!"
	ErrUnknownPerson   Reason = "The specified Person(s) do not exist in the database!"
	ErrDateFormat      Reason = "The date should be in the ISO8601 (YYYY-MM-DD) format!"
	ErrDateOutOfRange  Reason = "You specified a date outside of the date-range in the data!"
	ErrNotCSV          Reason = "Your file needs to be of the type .csv"
	ErrDurationFormat  Reason = "That's not a valid input, try something like \"6 days\" or \"2 weeks\""
)

// ValidateFile checks name refers to a .csv file.
func ValidateFile(name string) error {
	if !strings.HasSuffix(name, ".csv") {
		return ErrNotCSV
	}
	return nil
}

// ValidatePerson checks name is a column of t and not already in seen.
func ValidatePerson(t *model.Table, name string, seen []string) error {
	if !t.HasPerson(name) {
		return ErrUnknownPerson
	}
	for _, s := range seen {
		if s == name {
			return ErrDuplicatePerson
		}
	}
	return nil
}

// ParseStart reads an ISO-8601 date that must be a row of t.
func ParseStart(t *model.Table, s string) (time.Time, error) {
	d, err := time.Parse(model.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrDateFormat
	}
	if !t.Contains(d) {
		return time.Time{}, ErrDateOutOfRange
	}
	return d, nil
}

// ValidateStart is ParseStart without the value.
func ValidateStart(t *model.Table, s string) error {
	_, err := ParseStart(t, s)
	return err
}

// ValidateDuration checks s is a window length phrase.
func ValidateDuration(s string) error {
	if _, err := duration.Parse(s); err != nil {
		return ErrDurationFormat
	}
	return nil
}

// ParseCount reads a whole number between lo and hi inclusive.
func ParseCount(s string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotNumber
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%w Please enter a number from %d to %d.", ErrOutOfRange, lo, hi)
	}
	return n, nil
}

// ValidateCount is ParseCount without the value.
func ValidateCount(lo, hi int) func(string) error {
	return func(s string) error {
		_, err := ParseCount(s, lo, hi)
		return err
	}
}
