package insights

import (
	"time"

	"butce/internal/calendar"
	"butce/internal/money"
)

// SeriesMonths is the number of months shown in the income/expense series.
const SeriesMonths = 6

// TrendDays is the number of days shown in the daily trend.
const TrendDays = 30

// MonthWindow is a half-open calendar month [Start, End).
type MonthWindow struct {
	Start time.Time
	End   time.Time
	Label string
}

// LastMonths returns n month windows ending with today's month, oldest first.
func LastMonths(today time.Time, n int) []MonthWindow {
	current := calendar.MonthStart(today)
	windows := make([]MonthWindow, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := calendar.AddMonths(current, -i)
		windows = append(windows, MonthWindow{
			Start: start,
			End:   calendar.AddMonths(start, 1),
			Label: calendar.FormatMonth(start),
		})
	}
	return windows
}

// CurrentMonth returns the window of today's month.
func CurrentMonth(today time.Time) MonthWindow {
	return LastMonths(today, 1)[0]
}

// MonthlySeries holds three parallel sequences: labels, income and expense.
type MonthlySeries struct {
	Labels  []string       `json:"labels"`
	Income  []money.Amount `json:"income"`
	Expense []money.Amount `json:"expense"`
}

// Append adds one month to the series.
func (s *MonthlySeries) Append(label string, income, expense int64) {
	s.Labels = append(s.Labels, label)
	s.Income = append(s.Income, money.Amount(income))
	s.Expense = append(s.Expense, money.Amount(expense))
}

// TrendPoint is the signed net movement of a single day.
type TrendPoint struct {
	Date   string       `json:"date"`
	Amount money.Amount `json:"amount"`
}

// TrendStart returns the first day of a trend of the given length ending today.
func TrendStart(today time.Time, days int) time.Time {
	return calendar.DateOf(today).AddDate(0, 0, -(days - 1))
}

// DailyTrend lays out one point per day for the last `days` days, oldest first.
// signedByDay is keyed by ISO date; days missing from it report zero.
func DailyTrend(today time.Time, days int, signedByDay map[string]int64) []TrendPoint {
	start := TrendStart(today, days)
	points := make([]TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		d := start.AddDate(0, 0, i)
		points = append(points, TrendPoint{
			Date:   calendar.FormatDay(d),
			Amount: money.Amount(signedByDay[calendar.FormatISO(d)]),
		})
	}
	return points
}
