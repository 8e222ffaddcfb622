package calendar

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-07")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if d.Year != 2025 || d.Month != time.March || d.Day != 7 {
		t.Errorf("ParseDate = %v, want 2025-03-07", d)
	}

	invalid := []string{"", "2025-13-01", "2025-02-30", "07/03/2025", "2025-3-7"}
	for _, s := range invalid {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) = nil error, want error", s)
		}
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2025, time.March, 10)
	b := NewDate(2025, time.April, 2)
	if !a.Before(b) {
		t.Error("March 10 should be before April 2")
	}
	if !b.After(a) {
		t.Error("April 2 should be after March 10")
	}
	if !a.Equal(NewDate(2025, time.March, 10)) {
		t.Error("same dates should be equal")
	}
}

func TestDateWeekend(t *testing.T) {
	cases := []struct {
		date    Date
		weekend bool
	}{
		{NewDate(2025, time.March, 1), true},  // Saturday
		{NewDate(2025, time.March, 2), true},  // Sunday
		{NewDate(2025, time.March, 3), false}, // Monday
		{NewDate(2025, time.March, 7), false}, // Friday
	}
	for _, c := range cases {
		if got := c.date.IsWeekend(); got != c.weekend {
			t.Errorf("IsWeekend(%s) = %v, want %v", c.date, got, c.weekend)
		}
	}
}

func TestAddDaysCrossesMonth(t *testing.T) {
	d := NewDate(2025, time.January, 31).AddDays(1)
	if !d.Equal(NewDate(2025, time.February, 1)) {
		t.Errorf("AddDays = %v, want 2025-02-01", d)
	}
	d = NewDate(2025, time.March, 1).AddDays(-1)
	if !d.Equal(NewDate(2025, time.February, 28)) {
		t.Errorf("AddDays = %v, want 2025-02-28", d)
	}
}

func TestMonthString(t *testing.T) {
	if got := NewDate(2025, time.March, 7).MonthString(); got != "2025-03" {
		t.Errorf("MonthString = %q, want 2025-03", got)
	}
}

func TestParseMonth(t *testing.T) {
	p, err := ParseMonth("2025-02")
	if err != nil {
		t.Fatalf("ParseMonth returned error: %v", err)
	}
	if !p.Start.Equal(NewDate(2025, time.February, 1)) {
		t.Errorf("Start = %v, want 2025-02-01", p.Start)
	}
	if !p.End.Equal(NewDate(2025, time.February, 28)) {
		t.Errorf("End = %v, want 2025-02-28", p.End)
	}
	if len(p.Days()) != 28 {
		t.Errorf("Days = %d, want 28", len(p.Days()))
	}

	// Leap year
	p, err = ParseMonth("2024-02")
	if err != nil {
		t.Fatalf("ParseMonth returned error: %v", err)
	}
	if len(p.Days()) != 29 {
		t.Errorf("Days = %d, want 29", len(p.Days()))
	}

	invalid := []string{"", "2025", "2025-13", "03-2025", "2025/03"}
	for _, s := range invalid {
		if _, err := ParseMonth(s); err == nil {
			t.Errorf("ParseMonth(%q) = nil error, want error", s)
		}
	}
}

func TestPeriodContains(t *testing.T) {
	p := MonthPeriod(2025, time.March)
	if !p.Contains(NewDate(2025, time.March, 1)) {
		t.Error("period should contain its first day")
	}
	if !p.Contains(NewDate(2025, time.March, 31)) {
		t.Error("period should contain its last day")
	}
	if p.Contains(NewDate(2025, time.April, 1)) {
		t.Error("period should not contain the next month")
	}
}

func TestPeriodYears(t *testing.T) {
	p := Period{Start: NewDate(2024, time.December, 15), End: NewDate(2025, time.January, 15)}
	years := p.Years()
	if len(years) != 2 || years[0] != 2024 || years[1] != 2025 {
		t.Errorf("Years = %v, want [2024 2025]", years)
	}
}
