package model

import (
	"fmt"
	"time"
)

// Unit is the granularity of a window length.
type Unit string

const (
	Days  Unit = "D"
	Weeks Unit = "W"
)

// days returns the number of calendar days in one unit.
func (u Unit) days() int {
	if u == Weeks {
		return 7
	}
	return 1
}

func (u Unit) String() string {
	if u == Weeks {
		return "week"
	}
	return "day"
}

// MaxAmount bounds WindowLength.Amount so spans cannot overflow.
const MaxAmount = 1000

// WindowLength is the size of a searched window, e.g. 6 days or 2 weeks.
type WindowLength struct {
	Amount int  `json:"amount" yaml:"amount"`
	Unit   Unit `json:"unit" yaml:"unit"`
}

// Validate checks the amount is positive and the unit known.
func (l WindowLength) Validate() error {
	if l.Amount < 1 {
		return fmt.Errorf("window length must be at least 1, got %d", l.Amount)
	}
	if l.Amount > MaxAmount {
		return fmt.Errorf("window length must be at most %d, got %d", MaxAmount, l.Amount)
	}
	if l.Unit != Days && l.Unit != Weeks {
		return fmt.Errorf("unknown window unit %q", l.Unit)
	}
	return nil
}

// SpanDays is the inclusive offset in days from the first to the last day
// of a window: a 6 day window starting on D ends on D+5.
func (l WindowLength) SpanDays() int {
	return (l.Amount - 1) * l.Unit.days()
}

// End returns the last day covered by a window starting on start.
func (l WindowLength) End(start time.Time) time.Time {
	return DateOf(start).AddDate(0, 0, l.SpanDays())
}

// Decrement returns the same length shortened by one unit.
func (l WindowLength) Decrement() WindowLength {
	return WindowLength{Amount: l.Amount - 1, Unit: l.Unit}
}

// String renders the length in plain words ("1 day", "2 weeks").
func (l WindowLength) String() string {
	s := fmt.Sprintf("%d %s", l.Amount, l.Unit)
	if l.Amount > 1 {
		s += "s"
	}
	return s
}
