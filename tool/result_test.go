package tool

import (
	"errors"
	"testing"
)

func TestSuccessEnvelope(t *testing.T) {
	result := Success("Trade executed successfully", map[string]any{
		"transaction": "sig123",
		"status":      "should not clobber the envelope",
	})

	if result.Status() != StatusSuccess {
		t.Errorf("Status() = %q, want %q", result.Status(), StatusSuccess)
	}
	if !result.OK() {
		t.Error("OK() = false, want true")
	}
	if result.Message() != "Trade executed successfully" {
		t.Errorf("Message() = %q", result.Message())
	}
	if result.Get("transaction") != "sig123" {
		t.Errorf("transaction = %v", result.Get("transaction"))
	}
	if result.Code() != "" {
		t.Errorf("Code() = %q, want empty on success", result.Code())
	}
}

func TestFailureEnvelope(t *testing.T) {
	result := Failure(errors.New("boom"))

	if result.Status() != StatusError {
		t.Errorf("Status() = %q, want %q", result.Status(), StatusError)
	}
	if result.OK() {
		t.Error("OK() = true, want false")
	}
	if result.Message() != "boom" {
		t.Errorf("Message() = %q, want boom", result.Message())
	}
	if result.Code() != CodeUnknown {
		t.Errorf("Code() = %q, want %q", result.Code(), CodeUnknown)
	}
}

func TestFailureEnvelopeKeepsWrappedCode(t *testing.T) {
	wrapped := &codedError{code: "RATE_LIMITED", message: "slow down"}
	result := Failure(wrapped)
	if result.Code() != "RATE_LIMITED" {
		t.Errorf("Code() = %q, want RATE_LIMITED", result.Code())
	}
}
