package errs

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewErrorStatuses(t *testing.T) {
	tests := []struct {
		name           string
		code           int
		expectedStatus int
	}{
		{name: "empty message is a client error", code: ErrEmptyMessage, expectedStatus: http.StatusBadRequest},
		{name: "missing token is a client error", code: ErrMissingSessionToken, expectedStatus: http.StatusBadRequest},
		{name: "unknown catalog type is a client error", code: ErrUnknownCatalogType, expectedStatus: http.StatusBadRequest},
		{name: "user not found maps to 404", code: ErrUserNotFound, expectedStatus: http.StatusNotFound},
		{name: "unsupported method maps to 405", code: ErrMethodNotAllowed, expectedStatus: http.StatusMethodNotAllowed},
		{name: "storage failure maps to 500", code: ErrStorage, expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customErr := NewError(tt.code)
			if customErr.Status != tt.expectedStatus {
				t.Fatalf("code %d: status = %d, want %d", tt.code, customErr.Status, tt.expectedStatus)
			}
			if customErr.Code != tt.code {
				t.Fatalf("code %d: got code %d back", tt.code, customErr.Code)
			}
		})
	}
}

func TestNewErrorUnknownCodeFallsBack(t *testing.T) {
	customErr := NewError(999999)
	if customErr.Code != ErrUnknown {
		t.Fatalf("unknown code should fall back to ErrUnknown, got %d", customErr.Code)
	}
	if customErr.Status != http.StatusInternalServerError {
		t.Fatalf("fallback status = %d, want 500", customErr.Status)
	}
}

func TestStorageErrorInterpolatesDetail(t *testing.T) {
	underlying := errors.New("connection refused")

	customErr := NewStorageError(underlying)
	if customErr.Message != "Server error: connection refused" {
		t.Fatalf("storage error message = %q", customErr.Message)
	}
	if customErr.Status != http.StatusInternalServerError {
		t.Fatalf("storage error status = %d, want 500", customErr.Status)
	}
}

func TestMissingSessionTokenMessage(t *testing.T) {
	customErr := NewError(ErrMissingSessionToken)
	if customErr.Message != "Session token not found" {
		t.Fatalf("message = %q, want %q", customErr.Message, "Session token not found")
	}
}
