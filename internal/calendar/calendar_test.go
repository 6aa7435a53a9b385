package calendar

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{name: "iso", input: "2024-03-15", want: day(2024, 3, 15), wantOK: true},
		{name: "day_first", input: "15.03.2024", want: day(2024, 3, 15), wantOK: true},
		{name: "surrounding_spaces", input: "  2024-03-15 ", want: day(2024, 3, 15), wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "us_format", input: "03/15/2024", wantOK: false},
		{name: "invalid_day", input: "2024-02-30", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDateOfKeepsLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	// 01:30 local on the 2nd is still the 1st in UTC.
	local := time.Date(2024, 6, 2, 1, 30, 0, 0, loc)

	if got := DateOf(local); !got.Equal(day(2024, 6, 2)) {
		t.Errorf("expected 2024-06-02, got %s", got)
	}
}

func TestWholeMonths(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{name: "full_year", a: day(2024, 1, 1), b: day(2024, 12, 31), want: 12},
		{name: "same_day", a: day(2024, 1, 1), b: day(2024, 1, 1), want: 1},
		{name: "same_month", a: day(2024, 1, 5), b: day(2024, 1, 20), want: 1},
		{name: "partial_month_rounds_up", a: day(2024, 1, 15), b: day(2024, 3, 20), want: 3},
		{name: "day_before_anniversary", a: day(2024, 1, 15), b: day(2024, 3, 10), want: 2},
		{name: "half_year", a: day(2024, 1, 1), b: day(2024, 6, 30), want: 6},
		{name: "across_years", a: day(2023, 11, 1), b: day(2024, 2, 1), want: 4},
		{name: "reversed_floors_at_one", a: day(2024, 6, 1), b: day(2024, 1, 1), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WholeMonths(tt.a, tt.b); got != tt.want {
				t.Errorf("WholeMonths(%s, %s) = %d, want %d", FormatISO(tt.a), FormatISO(tt.b), got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween(day(2024, 2, 28), day(2024, 3, 1)); got != 2 {
		t.Errorf("expected 2 days across leap day, got %d", got)
	}
	if got := DaysBetween(day(2024, 3, 1), day(2024, 2, 28)); got != -2 {
		t.Errorf("expected -2, got %d", got)
	}
}

func TestMonthHelpers(t *testing.T) {
	start := MonthStart(day(2024, 3, 31))
	if !start.Equal(day(2024, 3, 1)) {
		t.Errorf("expected 2024-03-01, got %s", start)
	}
	if got := AddMonths(start, -5); !got.Equal(day(2023, 10, 1)) {
		t.Errorf("expected 2023-10-01, got %s", got)
	}
	if got := FormatMonth(start); got != "03.2024" {
		t.Errorf("expected 03.2024, got %s", got)
	}
	if got := FormatDay(day(2024, 3, 5)); got != "05.03.2024" {
		t.Errorf("expected 05.03.2024, got %s", got)
	}
}
