package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hari-prashath-123/art-finity/pkg/logger"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without internal error",
			err:      ErrNotFound,
			expected: "not_found: Resource not found",
		},
		{
			name:     "with internal error",
			err:      ErrInternal.WithInternal(errors.New("render failed")),
			expected: "internal_error: An internal error occurred (render failed)",
		},
		{
			name:     "empty message",
			err:      ErrBadRequest.WithMessage(""),
			expected: "bad_request: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestWithHelpersCopy(t *testing.T) {
	cause := errors.New("boom")
	e := ErrServiceUnavailable.WithInternal(cause).WithDetails(map[string]any{"widget": "registrations"})

	if ErrServiceUnavailable.Internal != nil || ErrServiceUnavailable.Details != nil {
		t.Fatal("With* must not mutate the shared sentinel")
	}
	if !errors.Is(e, cause) {
		t.Error("errors.Is should reach the internal error through Unwrap")
	}
	if e.Details["widget"] != "registrations" {
		t.Errorf("Details = %v", e.Details)
	}
}

func TestFrom(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrNotFound)
	if got := From(wrapped); got != ErrNotFound {
		t.Errorf("From(wrapped) = %v, want ErrNotFound", got)
	}

	plain := errors.New("plain")
	got := From(plain)
	if got.HTTPStatus != http.StatusInternalServerError || !errors.Is(got, plain) {
		t.Errorf("From(plain) = %+v", got)
	}
}

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"app error", ErrBadRequest.WithMessage("invalid gid"), http.StatusBadRequest, "bad_request"},
		{"wrapped app error", fmt.Errorf("x: %w", ErrNotFound), http.StatusNotFound, "not_found"},
		{"plain error", errors.New("oops"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/registrations", nil)
			rec := httptest.NewRecorder()

			WriteJSON(rec, req, logger.Discard(), tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}

			var resp map[string]map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to parse response: %v", err)
			}
			if resp["error"]["code"] != tt.wantCode {
				t.Errorf("code = %v, want %s", resp["error"]["code"], tt.wantCode)
			}
		})
	}
}
