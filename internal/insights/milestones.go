package insights

import (
	"fmt"
	"sort"
)

// Milestone is a fixed progress threshold with the message shown once reached.
type Milestone struct {
	Threshold int    `json:"threshold"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
}

// Milestones are ordered by ascending threshold. Message is a format string
// taking the goal name.
var Milestones = []Milestone{
	{Threshold: 25, Title: "Off to a great start", Message: "You have saved a quarter of %q.", Severity: "info"},
	{Threshold: 50, Title: "Halfway there", Message: "Half of %q is already saved.", Severity: "info"},
	{Threshold: 75, Title: "Final stretch", Message: "Three quarters of %q is saved, keep going.", Severity: "success"},
	{Threshold: 100, Title: "Goal reached", Message: "Congratulations, %q is fully funded!", Severity: "success"},
}

// UnlockedMilestone is a milestone reached by a specific goal.
type UnlockedMilestone struct {
	GoalID    uint   `json:"goal_id"`
	GoalName  string `json:"goal_name"`
	Threshold int    `json:"threshold"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
}

// UnlockMilestones returns every milestone reached by any plan, sorted by
// threshold and then goal name. Nothing is remembered between calls, so a
// milestone is reported again on every call while progress qualifies.
func UnlockMilestones(plans []GoalPlan) []UnlockedMilestone {
	unlocked := []UnlockedMilestone{}
	for _, p := range plans {
		for _, m := range Milestones {
			if !p.reached(m.Threshold) {
				break
			}
			unlocked = append(unlocked, UnlockedMilestone{
				GoalID:    p.GoalID,
				GoalName:  p.Name,
				Threshold: m.Threshold,
				Title:     m.Title,
				Message:   fmt.Sprintf(m.Message, p.Name),
				Severity:  m.Severity,
			})
		}
	}

	sort.SliceStable(unlocked, func(i, j int) bool {
		if unlocked[i].Threshold != unlocked[j].Threshold {
			return unlocked[i].Threshold < unlocked[j].Threshold
		}
		return unlocked[i].GoalName < unlocked[j].GoalName
	})
	return unlocked
}
