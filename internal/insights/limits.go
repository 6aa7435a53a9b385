package insights

import "butce/internal/money"

// LimitStatus describes how much of a category's monthly limit has been used.
type LimitStatus struct {
	CategoryID  uint          `json:"category_id"`
	Name        string        `json:"name"`
	Color       string        `json:"color"`
	HasLimit    bool          `json:"has_limit"`
	Limit       *money.Amount `json:"limit"`
	Spent       money.Amount  `json:"spent"`
	Remaining   *money.Amount `json:"remaining"`
	UsedPercent *float64      `json:"used_percent"`
	Exceeded    bool          `json:"exceeded"`
}

// EvaluateLimit compares a month's spending against an optional limit.
// Exceeding is strict: spending exactly the limit is still within it.
func EvaluateLimit(spent int64, limit *int64) LimitStatus {
	status := LimitStatus{Spent: money.Amount(spent)}
	if limit == nil {
		return status
	}

	l := *limit
	lim := money.Amount(l)
	remaining := money.Amount(l - spent)
	status.HasLimit = true
	status.Limit = &lim
	status.Remaining = &remaining

	var used float64
	switch {
	case l > 0:
		used = money.Percent(spent, l)
		status.Exceeded = spent > l
	case spent > 0:
		used = 100
		status.Exceeded = true
	}
	status.UsedPercent = &used

	return status
}
