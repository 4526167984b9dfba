// Package birthdate parses and validates DD.MM.YYYY birth dates before they
// reach the reduction engine.
package birthdate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leapstack-labs/arcana/pkg/core"
)

// MinYear is the earliest accepted birth year.
const MinYear = 1900

// Validation errors. All of them wrap ErrInvalidDate.
var (
	ErrInvalidDate = errors.New("invalid date")
	ErrEmpty       = fmt.Errorf("%w: enter a birth date", ErrInvalidDate)
	ErrFormat      = fmt.Errorf("%w: expected DD.MM.YYYY", ErrInvalidDate)
	ErrRange       = fmt.Errorf("%w: year out of range", ErrInvalidDate)
	ErrCalendar    = fmt.Errorf("%w: no such calendar day", ErrInvalidDate)
)

// Date is a calendar-valid birth date.
type Date struct {
	Day   int
	Month int
	Year  int
}

// String renders the date as DD.MM.YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d.%02d.%04d", d.Day, d.Month, d.Year)
}

// Request builds a calculation request for the date.
func (d Date) Request(spread core.SpreadType) core.Request {
	return core.Request{Day: d.Day, Month: d.Month, Year: d.Year, Spread: spread}
}

// Parser validates dates against a year window ending at the current year.
type Parser struct {
	MinYear int
	// Now supplies the current time; defaults to time.Now.
	Now func() time.Time
}

// Parse validates s with the default window [MinYear, now.Year()].
func Parse(s string, now time.Time) (Date, error) {
	p := Parser{MinYear: MinYear, Now: func() time.Time { return now }}
	return p.Parse(s)
}

// Parse validates s as DD.MM.YYYY.
func (p Parser) Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrEmpty
	}

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Date{}, fmt.Errorf("%w: %q", ErrFormat, s)
		}
		nums[i] = n
	}
	d := Date{Day: nums[0], Month: nums[1], Year: nums[2]}

	minYear := p.MinYear
	if minYear == 0 {
		minYear = MinYear
	}
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	if maxYear := now().Year(); d.Year < minYear || d.Year > maxYear {
		return Date{}, fmt.Errorf("%w: %d not in %d..%d", ErrRange, d.Year, minYear, maxYear)
	}

	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return Date{}, fmt.Errorf("%w: %s", ErrCalendar, s)
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	if t.Day() != d.Day || int(t.Month()) != d.Month || t.Year() != d.Year {
		return Date{}, fmt.Errorf("%w: %s", ErrCalendar, s)
	}

	return d, nil
}

// Mask formats raw keyboard input the way the date field does while typing:
// non-digits are dropped and dots are inserted after the day and month,
// up to the ten characters of DD.MM.YYYY.
func Mask(raw string) string {
	var b strings.Builder
	digits := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		if digits == 2 || digits == 4 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
		digits++
		if b.Len() >= 10 {
			break
		}
	}
	return b.String()
}
