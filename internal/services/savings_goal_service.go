package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"butce/internal/calendar"
	apperrors "butce/internal/errors"
	"butce/internal/insights"
	"butce/internal/models"
	"butce/internal/money"
)

// savingsGoalService handles savings-goal business logic.
type savingsGoalService struct {
	db  *gorm.DB
	now Clock
}

// NewSavingsGoalService creates a new SavingsGoalServicer.
func NewSavingsGoalService(db *gorm.DB, now Clock) SavingsGoalServicer {
	return &savingsGoalService{db: db, now: now}
}

// CreateGoal creates a savings goal. The target date is required and may not
// precede the start date.
func (s *savingsGoalService) CreateGoal(in SavingsGoalInput) (*models.SavingsGoal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if in.TargetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be greater than zero")
	}
	if in.TargetDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target date is required")
	}

	start := in.StartDate
	if start.IsZero() {
		start = s.now()
	}
	start = calendar.DateOf(start)
	target := calendar.DateOf(in.TargetDate)
	if target.Before(start) {
		return nil, apperrors.ErrInvalidDateRange
	}

	goal := &models.SavingsGoal{
		Name:         name,
		TargetAmount: money.Amount(in.TargetAmount),
		StartDate:    start,
		TargetDate:   target,
	}
	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// ListGoals returns every goal ordered by target date, then name.
func (s *savingsGoalService) ListGoals() ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	if err := s.db.Order("target_date ASC, name ASC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// DeleteGoal deletes a savings goal.
func (s *savingsGoalService) DeleteGoal(id uint) error {
	result := s.db.Delete(&models.SavingsGoal{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrSavingsGoalNotFound
	}
	return nil
}

// Overview computes every goal's plan from the ledger and the milestones
// they unlock. Nothing is cached; each call reads the ledger again.
func (s *savingsGoalService) Overview() (*SavingsOverview, error) {
	goals, err := s.ListGoals()
	if err != nil {
		return nil, err
	}

	today := calendar.DateOf(s.now())
	plans := make([]insights.GoalPlan, 0, len(goals))
	for _, g := range goals {
		goal := insights.Goal{
			ID:           g.ID,
			Name:         g.Name,
			TargetAmount: int64(g.TargetAmount),
			StartDate:    g.StartDate.UTC(),
			TargetDate:   g.TargetDate.UTC(),
		}

		net, err := s.netSavings(calendar.DateOf(goal.StartDate), goal.TrackingEnd(today))
		if err != nil {
			return nil, err
		}
		plans = append(plans, insights.PlanGoal(goal, net, today))
	}

	return &SavingsOverview{
		Goals:      plans,
		Milestones: insights.UnlockMilestones(plans),
	}, nil
}

// netSavings is income minus expense over every transaction in [from, to].
func (s *savingsGoalService) netSavings(from, to time.Time) (int64, error) {
	if to.Before(from) {
		return 0, nil
	}

	var net int64
	if err := s.db.Model(&models.Transaction{}).
		Select(signedAmountSQL).
		Where("date >= ? AND date < ?", from, to.AddDate(0, 0, 1)).
		Scan(&net).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return net, nil
}
