// Package duration turns natural language window lengths such as "2 weeks"
// or "10 d" into model.WindowLength values.
package duration

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/kilianp07/tripwindow/core/model"
)

// ErrInvalid is returned for phrases that do not describe a window length.
var ErrInvalid = errors.New("not a valid window length")

var number = regexp.MustCompile(`\b\d+\b`)

var suffixes = []struct {
	suffix string
	unit   model.Unit
}{
	{" weeks", model.Weeks},
	{" week", model.Weeks},
	{" w", model.Weeks},
	{" days", model.Days},
	{" day", model.Days},
	{" d", model.Days},
}

// Parse reads a phrase holding exactly one whole number and ending in a
// day or week unit ("day", "days", "d", "week", "weeks", "w"), case
// insensitive. Leading words are allowed: "for 2 weeks" is 2 weeks.
func Parse(s string) (model.WindowLength, error) {
	phrase := strings.ToLower(strings.TrimSpace(s))
	digits := number.FindAllString(phrase, -1)
	if len(digits) != 1 {
		return model.WindowLength{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}
	for _, sfx := range suffixes {
		if !strings.HasSuffix(phrase, sfx.suffix) {
			continue
		}
		n, err := strconv.Atoi(digits[0])
		if err != nil || n < 1 || n > model.MaxAmount {
			return model.WindowLength{}, fmt.Errorf("%w: %q needs an amount from 1 to %d", ErrInvalid, s, model.MaxAmount)
		}
		return model.WindowLength{Amount: n, Unit: sfx.unit}, nil
	}
	return model.WindowLength{}, fmt.Errorf("%w: %q, try something like \"6 days\" or \"2 weeks\"", ErrInvalid, s)
}
