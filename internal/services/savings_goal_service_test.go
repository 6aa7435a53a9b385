package services

import (
	"testing"
	"time"

	"butce/internal/models"
	"butce/internal/testutil"
)

func TestCreateGoal(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewSavingsGoalService(db, testutil.FixedClock(testToday))

		goal, err := svc.CreateGoal(SavingsGoalInput{
			Name: "Holiday", TargetAmount: 120000,
			StartDate: testutil.Day(2024, 1, 1), TargetDate: testutil.Day(2024, 12, 31),
		})
		testutil.AssertNoError(t, err)
		if goal.ID == 0 || goal.TargetAmount != 120000 {
			t.Errorf("unexpected goal %+v", goal)
		}
	})

	t.Run("missing_start_defaults_to_today", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewSavingsGoalService(db, testutil.FixedClock(testToday))

		goal, err := svc.CreateGoal(SavingsGoalInput{Name: "Car", TargetAmount: 100, TargetDate: testutil.Day(2025, 1, 1)})
		testutil.AssertNoError(t, err)
		if !goal.StartDate.Equal(testToday) {
			t.Errorf("expected start today, got %s", goal.StartDate)
		}
	})

	t.Run("same_day_is_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := NewSavingsGoalService(db, testutil.FixedClock(testToday))

		_, err := svc.CreateGoal(SavingsGoalInput{Name: "Now", TargetAmount: 100, StartDate: testToday, TargetDate: testToday})
		testutil.AssertNoError(t, err)
	})

	tests := []struct {
		name     string
		in       SavingsGoalInput
		wantCode string
	}{
		{name: "target_before_start", in: SavingsGoalInput{Name: "Bad", TargetAmount: 100, StartDate: testutil.Day(2024, 6, 2), TargetDate: testutil.Day(2024, 6, 1)}, wantCode: "INVALID_DATE_RANGE"},
		{name: "missing_name", in: SavingsGoalInput{TargetAmount: 100, TargetDate: testutil.Day(2025, 1, 1)}, wantCode: "INVALID_INPUT"},
		{name: "zero_target", in: SavingsGoalInput{Name: "Zero", TargetDate: testutil.Day(2025, 1, 1)}, wantCode: "INVALID_INPUT"},
		{name: "missing_target_date", in: SavingsGoalInput{Name: "Open", TargetAmount: 100}, wantCode: "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := testutil.SetupTestDB(t)
			svc := NewSavingsGoalService(db, testutil.FixedClock(testToday))

			_, err := svc.CreateGoal(tt.in)
			testutil.AssertAppError(t, err, tt.wantCode)
			testutil.AssertValidation(t, err)
			testutil.AssertRowCount(t, db, &models.SavingsGoal{}, 0)
		})
	}
}

func TestDeleteGoal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewSavingsGoalService(db, testutil.FixedClock(testToday))
	goal := testutil.CreateTestSavingsGoal(t, db, "Holiday", 1000, testutil.Day(2024, 1, 1), testutil.Day(2024, 12, 31))

	testutil.AssertNoError(t, svc.DeleteGoal(goal.ID))
	testutil.AssertAppError(t, svc.DeleteGoal(goal.ID), "SAVINGS_GOAL_NOT_FOUND")
}

func TestSavingsOverview(t *testing.T) {
	db := testutil.SetupTestDB(t)
	today := testutil.Day(2024, 6, 30)
	svc := NewSavingsGoalService(db, testutil.FixedClock(today))
	account := testutil.CreateTestAccount(t, db)
	category := testutil.CreateTestCategory(t, db)

	testutil.CreateTestSavingsGoal(t, db, "Holiday", 120000, testutil.Day(2024, 1, 1), testutil.Day(2024, 12, 31))

	// Outside the window: before the start date and after today.
	testutil.CreateTestTransaction(t, db, account.ID, category.ID, models.TransactionTypeIncome, 999999, testutil.Day(2023, 12, 31))
	testutil.CreateTestTransaction(t, db, account.ID, category.ID, models.TransactionTypeIncome, 999999, testutil.Day(2024, 7, 1))
	// Inside the window: net 600.00.
	testutil.CreateTestTransaction(t, db, account.ID, category.ID, models.TransactionTypeIncome, 100000, testutil.Day(2024, 1, 1))
	testutil.CreateTestTransaction(t, db, account.ID, category.ID, models.TransactionTypeExpense, 40000, testutil.Day(2024, 6, 30))

	overview, err := svc.Overview()
	testutil.AssertNoError(t, err)

	if len(overview.Goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(overview.Goals))
	}
	plan := overview.Goals[0]
	if plan.NetSavings != 60000 {
		t.Errorf("expected net 600.00, got %s", plan.NetSavings)
	}
	if plan.ProgressPercent != 50 {
		t.Errorf("expected 50%%, got %v", plan.ProgressPercent)
	}
	if plan.PlanDurationMonths != 12 {
		t.Errorf("expected 12 months, got %d", plan.PlanDurationMonths)
	}

	if len(overview.Milestones) != 2 {
		t.Fatalf("expected 25%% and 50%% milestones, got %d", len(overview.Milestones))
	}
	if overview.Milestones[0].Threshold != 25 || overview.Milestones[1].Threshold != 50 {
		t.Errorf("unexpected milestones %+v", overview.Milestones)
	}

	// Recomputed on every call: the same milestones come back.
	again, err := svc.Overview()
	testutil.AssertNoError(t, err)
	if len(again.Milestones) != 2 {
		t.Errorf("expected milestones to be reported again, got %d", len(again.Milestones))
	}
}

func TestSavingsOverviewGoalNotStarted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewSavingsGoalService(db, testutil.FixedClock(testutil.Day(2024, 1, 1)))
	account := testutil.CreateTestAccount(t, db)
	category := testutil.CreateTestCategory(t, db)
	testutil.CreateTestTransaction(t, db, account.ID, category.ID, models.TransactionTypeIncome, 5000, testutil.Day(2024, 1, 1))

	testutil.CreateTestSavingsGoal(t, db, "Later", 1000, testutil.Day(2024, 3, 1), testutil.Day(2024, 3, 1).Add(90*24*time.Hour))

	overview, err := svc.Overview()
	testutil.AssertNoError(t, err)

	plan := overview.Goals[0]
	if plan.NetSavings != 0 || plan.ElapsedMonths != 0 || plan.ProgressPercent != 0 {
		t.Errorf("expected an untouched plan before the start date, got %+v", plan)
	}
	if len(overview.Milestones) != 0 {
		t.Errorf("expected no milestones, got %d", len(overview.Milestones))
	}
}
