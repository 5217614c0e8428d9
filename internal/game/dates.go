package game

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used everywhere in the system.
// Dates are plain strings; the caller decides whether "today" means
// server-local or client-local.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date string is not a well-formed
// YYYY-MM-DD calendar date. Seed derivation is undefined for anything
// else, so malformed input is rejected before any arithmetic happens.
var ErrInvalidDate = fmt.Errorf("invalid date: expected YYYY-MM-DD")

// ParseDate validates a YYYY-MM-DD string and returns its calendar parts.
func ParseDate(dateStr string) (year, month, day int, err error) {
	t, perr := time.Parse(DateLayout, dateStr)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
	}
	return t.Year(), int(t.Month()), t.Day(), nil
}

// DateSeed folds a calendar date into the base seed for that day by
// concatenating year, month and day as decimal digits, e.g.
// "2024-01-15" -> 20240115. Both games that use a single daily draw
// share this seed.
func DateSeed(dateStr string) (int64, error) {
	year, month, day, err := ParseDate(dateStr)
	if err != nil {
		return 0, err
	}
	return (int64(year)*100+int64(month))*100 + int64(day), nil
}

// SlotSeed derives a per-difficulty seed from the base date seed for
// games that draw each slot independently. slot is 1-based (1=easy,
// 2=medium, 3=hard); the 1000 stride keeps slots decorrelated while
// staying a pure function of the date.
func SlotSeed(baseSeed int64, slot int) int64 {
	return baseSeed + int64(slot)*1000
}

// DayNumber counts whole days from a game's epoch date to dateStr,
// numbering inclusively so the epoch itself is day 1. Both dates are
// truncated to midnight before differencing, so sub-day or DST-shifted
// timestamps can't introduce off-by-one errors.
func DayNumber(dateStr, epochStr string) (int, error) {
	d, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, dateStr)
	}
	e, err := time.ParseInLocation(DateLayout, epochStr, time.Local)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, epochStr)
	}
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	e = time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(e).Hours()/24) + 1, nil
}

// Today returns the current server-local calendar date string. Handlers
// use it only as a fallback when the client does not pass its own date.
func Today() string {
	return time.Now().Format(DateLayout)
}
