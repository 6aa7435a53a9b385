package testutil

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	apperrors "butce/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	appErr := asAppError(t, err)
	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertValidation checks that err is a form-level problem, the kind handlers
// turn into a warning instead of an error page.
func AssertValidation(t *testing.T, err error) {
	t.Helper()

	if err == nil {
		t.Fatal("expected a validation error, got nil")
	}
	if appErr := asAppError(t, err); !appErr.IsValidation() {
		t.Errorf("expected a validation error, got %s (status %d)", appErr.Code, appErr.StatusCode)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertRowCount checks how many rows of model's table exist.
func AssertRowCount(t *testing.T, db *gorm.DB, model interface{}, want int64) {
	t.Helper()

	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != want {
		t.Errorf("expected %d rows of %T, got %d", want, model, count)
	}
}

func asAppError(t *testing.T, err error) *apperrors.AppError {
	t.Helper()

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}
	return appErr
}
