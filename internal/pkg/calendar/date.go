package calendar

import (
	"fmt"
	"time"
)

// Date is a plain calendar date (year, month, day) with no time-of-day and
// no timezone. All "is this day before today" decisions in the timesheet
// engine go through this type; timestamps are only used for punch
// arithmetic.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given year, month and day, normalized
// the same way time.Date normalizes out-of-range values.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DateOf extracts the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Today returns the current calendar date in the given location.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(time.Now().In(loc))
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MonthString returns the "YYYY-MM" period d belongs to.
func (d Date) MonthString() string {
	return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
}

// Time returns the UTC midnight instant of d. Used only to round-trip
// through the database date columns.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the weekday of d (Sunday = 0 ... Saturday = 6).
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// IsWeekend reports whether d falls on Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than u.
func (d Date) Before(u Date) bool {
	if d.Year != u.Year {
		return d.Year < u.Year
	}
	if d.Month != u.Month {
		return d.Month < u.Month
	}
	return d.Day < u.Day
}

// After reports whether d is strictly later than u.
func (d Date) After(u Date) bool {
	return u.Before(d)
}

// Equal reports whether d and u are the same calendar day.
func (d Date) Equal(u Date) bool {
	return d.Year == u.Year && d.Month == u.Month && d.Day == u.Day
}

// Period is an inclusive range of calendar days.
type Period struct {
	Start Date
	End   Date
}

// MonthPeriod returns the period covering the whole calendar month.
func MonthPeriod(year int, month time.Month) Period {
	start := NewDate(year, month, 1)
	end := start.AddDays(daysIn(year, month) - 1)
	return Period{Start: start, End: end}
}

// ParseMonth parses "YYYY-MM" into its month period.
func ParseMonth(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthPeriod(t.Year(), t.Month()), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Valid reports whether the period is well formed (start not after end).
func (p Period) Valid() bool {
	return !p.Start.After(p.End)
}

// Days returns every date in the period, in order.
func (p Period) Days() []Date {
	if !p.Valid() {
		return nil
	}
	var days []Date
	for d := p.Start; !d.After(p.End); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether the date falls inside the period.
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// Years returns the distinct calendar years the period touches, in order.
func (p Period) Years() []int {
	if !p.Valid() {
		return nil
	}
	years := []int{p.Start.Year}
	if p.End.Year != p.Start.Year {
		for y := p.Start.Year + 1; y <= p.End.Year; y++ {
			years = append(years, y)
		}
	}
	return years
}
