package testutil

import (
	"errors"
	"strings"
	"testing"

	apperrors "cashflow/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) *apperrors.AppError {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
	return appErr
}

// AssertAppErrorContains is AssertAppError plus a check that the client-facing
// message mentions substr.
func AssertAppErrorContains(t *testing.T, err error, expectedCode, substr string) {
	t.Helper()

	appErr := AssertAppError(t, err, expectedCode)
	if !strings.Contains(appErr.Message, substr) {
		t.Errorf("expected message containing %q, got %q", substr, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
