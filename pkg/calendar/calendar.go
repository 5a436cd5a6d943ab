// Package calendar splits timestamps into the fields a clock face shows and
// renders the weekday and date captions in a display language.
//
// The calendar is always passed explicitly; nothing here reads the process
// locale or time zone.
package calendar

import (
	"fmt"
	"time"

	"golang.org/x/text/language"

	"github.com/go-drift/flipclock/pkg/errors"
)

// Components holds a decomposed timestamp. Weekday runs Sunday=1 through
// Saturday=7. Hour is always on the 24-hour clock.
type Components struct {
	Year    int `json:"year"`
	Month   int `json:"month"`
	Day     int `json:"day"`
	Weekday int `json:"weekday"`
	Hour    int `json:"hour"`
	Minute  int `json:"minute"`
	Second  int `json:"second"`
}

// Calendar pairs a time zone with a display language.
type Calendar struct {
	Location *time.Location
	Language language.Tag
}

// New returns a calendar for loc and lang.
func New(loc *time.Location, lang language.Tag) Calendar {
	return Calendar{Location: loc, Language: lang}
}

// Default returns a UTC calendar with Russian captions.
func Default() Calendar {
	return New(time.UTC, language.Russian)
}

// Decompose splits t into calendar fields in the calendar's zone.
//
// It fails with ErrIncompleteDecomposition, wrapped in a precondition
// ClockError, when t is the zero time or the calendar has no zone; those
// cases would otherwise yield meaningless fields.
func (c Calendar) Decompose(t time.Time) (Components, error) {
	const op = "calendar.Decompose"
	if c.Location == nil {
		return Components{}, errors.New(op, errors.KindPrecondition,
			fmt.Errorf("%w: calendar has no location", errors.ErrIncompleteDecomposition))
	}
	if t.IsZero() {
		return Components{}, errors.New(op, errors.KindPrecondition,
			fmt.Errorf("%w: zero timestamp", errors.ErrIncompleteDecomposition))
	}

	local := t.In(c.Location)
	year, month, day := local.Date()
	hour, minute, second := local.Clock()
	return Components{
		Year:    year,
		Month:   int(month),
		Day:     day,
		Weekday: int(local.Weekday()) + 1,
		Hour:    hour,
		Minute:  minute,
		Second:  second,
	}, nil
}

// To12Hour converts a 24-hour value for display on a 12-hour face. Only hours
// past noon change; midnight stays 0.
func To12Hour(hour int) int {
	if hour > 12 {
		return hour - 12
	}
	return hour
}

// Meridiem returns "AM" before noon and "PM" from noon on.
func Meridiem(hour24 int) string {
	if hour24 < 12 {
		return "AM"
	}
	return "PM"
}
