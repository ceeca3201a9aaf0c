package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidParameter, "width must be positive, got %d", -3)

	if err.Code != ErrCodeInvalidParameter {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidParameter)
	}
	if err.Message != "width must be positive, got -3" {
		t.Errorf("Message = %q", err.Message)
	}
	want := "INVALID_PARAMETER: width must be positive, got -3"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeNetwork, cause, "failed to fetch %s", "https://example.com")

	if !errors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap() should return cause")
	}
	want := "NETWORK_ERROR: failed to fetch https://example.com: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeNotFound, "object 123 does not exist")

	if !Is(err, ErrCodeNotFound) {
		t.Error("Is() should match the error's own code")
	}
	if Is(err, ErrCodeNetwork) {
		t.Error("Is() should not match a different code")
	}
	if Is(fmt.Errorf("plain error"), ErrCodeNotFound) {
		t.Error("Is() should not match plain errors")
	}

	// Code survives wrapping with fmt.Errorf
	wrapped := fmt.Errorf("context: %w", err)
	if !Is(wrapped, ErrCodeNotFound) {
		t.Error("Is() should unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeTimeout, "request timed out")); got != ErrCodeTimeout {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeTimeout)
	}
	if got := GetCode(fmt.Errorf("plain")); got != "" {
		t.Errorf("GetCode() on plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "page must be >= 1")
	if got := UserMessage(err); got != "page must be >= 1" {
		t.Errorf("UserMessage() = %q", got)
	}
	plain := fmt.Errorf("plain error")
	if got := UserMessage(plain); got != "plain error" {
		t.Errorf("UserMessage() on plain error = %q", got)
	}
}
