package insights

import (
	"time"

	"butce/internal/calendar"
	"butce/internal/money"
)

// Goal is the input of a savings plan computation.
type Goal struct {
	ID           uint
	Name         string
	TargetAmount int64
	StartDate    time.Time
	TargetDate   time.Time
}

// TrackingEnd is the last day whose transactions count towards the goal.
func (g Goal) TrackingEnd(today time.Time) time.Time {
	return calendar.MinDate(calendar.DateOf(g.TargetDate), calendar.DateOf(today))
}

// GoalPlan is the computed state of a savings goal on a given day.
type GoalPlan struct {
	GoalID                 uint         `json:"goal_id"`
	Name                   string       `json:"name"`
	TargetAmount           money.Amount `json:"target_amount"`
	StartDate              string       `json:"start_date"`
	TargetDate             string       `json:"target_date"`
	PlanDurationMonths     int          `json:"plan_duration_months"`
	ElapsedMonths          int          `json:"elapsed_months"`
	NetSavings             money.Amount `json:"net_savings"`
	RemainingAmount        money.Amount `json:"remaining_amount"`
	RemainingDays          int          `json:"remaining_days"`
	// ProgressPercent is rounded to two decimals for display. Milestones are
	// unlocked from the unrounded ratio, so 24.999% shows as 25 without the
	// 25% milestone.
	ProgressPercent        float64      `json:"progress_percent"`
	ActualMonthlyRate      money.Amount `json:"actual_monthly_rate"`
	RecommendedMonthlyRate money.Amount `json:"recommended_monthly_rate"`
	IsCompleted            bool         `json:"is_completed"`

	net    int64
	target int64
}

// PlanGoal computes a goal's plan from the net ledger movement inside
// [StartDate, TrackingEnd(today)].
func PlanGoal(g Goal, netSavings int64, today time.Time) GoalPlan {
	today = calendar.DateOf(today)
	start := calendar.DateOf(g.StartDate)
	target := calendar.DateOf(g.TargetDate)

	plan := GoalPlan{
		GoalID:             g.ID,
		Name:               g.Name,
		TargetAmount:       money.Amount(g.TargetAmount),
		StartDate:          calendar.FormatISO(start),
		TargetDate:         calendar.FormatISO(target),
		PlanDurationMonths: calendar.WholeMonths(start, target),
		NetSavings:         money.Amount(netSavings),
		net:                netSavings,
		target:             g.TargetAmount,
	}

	if remaining := g.TargetAmount - netSavings; remaining > 0 {
		plan.RemainingAmount = money.Amount(remaining)
	}
	if days := calendar.DaysBetween(today, target); days > 0 {
		plan.RemainingDays = days
	}

	if g.TargetAmount > 0 {
		p := money.Percent(netSavings, g.TargetAmount)
		switch {
		case p < 0:
			p = 0
		case p > 100:
			p = 100
		}
		plan.ProgressPercent = p
		plan.IsCompleted = netSavings >= g.TargetAmount
	}

	if !today.Before(start) {
		plan.ElapsedMonths = calendar.WholeMonths(start, g.TrackingEnd(today))
	}
	if plan.ElapsedMonths > 0 {
		plan.ActualMonthlyRate = money.Ratio(netSavings, int64(plan.ElapsedMonths))
	}
	plan.RecommendedMonthlyRate = money.Ratio(g.TargetAmount, int64(plan.PlanDurationMonths))

	return plan
}

// reached reports whether the plan's progress is at least threshold percent.
// It compares in integers so rounding of ProgressPercent never unlocks early.
func (p GoalPlan) reached(threshold int) bool {
	if p.target <= 0 {
		return false
	}
	return p.net*100 >= int64(threshold)*p.target
}
