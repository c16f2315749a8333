// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/wpconf/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unknown_section_error",
			code:    errors.ErrUnknownSection,
			message: "section AUTOLOAD not found",
			wantStr: "[UNKNOWN_SECTION] section AUTOLOAD not found",
		},
		{
			name:    "malformed_markers_error",
			code:    errors.ErrMalformedMarkers,
			message: "unterminated section",
			wantStr: "[MALFORMED_MARKERS] unterminated section",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrMalformedMarkers, "line %d: nested section %q", 12, "AUTOLOAD")
	if err.Message != `line 12: nested section "AUTOLOAD"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("disk full")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrPersistFailure, "cannot write wp-config.php")

		if err.Code != errors.ErrPersistFailure {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrPersistFailure)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[PERSIST_FAILURE] cannot write wp-config.php: disk full"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrPersistFailure, "rename %s", "a.tmp")
		if err.Message != "rename a.tmp" {
			t.Errorf("Wrapf() message = %q", err.Message)
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrUnknownSection, "not found").
		WithDetail("section", "THEMES_REGISTER").
		WithDetail("deleted", true)

	if err.Details["section"] != "THEMES_REGISTER" {
		t.Errorf("WithDetail() section = %v", err.Details["section"])
	}

	if err.Details["deleted"] != true {
		t.Errorf("WithDetail() deleted = %v", err.Details["deleted"])
	}
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"path": "/srv/app/wp-config.php",
		"line": 42,
	}

	err := errors.New(errors.ErrPersistFailure, "cannot write").WithDetails(details)

	for k, v := range details {
		if err.Details[k] != v {
			t.Errorf("WithDetails() %s = %v, want %v", k, err.Details[k], v)
		}
	}

	if got := errors.GetErrorDetails(err); got["line"] != 42 {
		t.Errorf("GetErrorDetails() line = %v", got["line"])
	}
	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails() on plain error = %v, want nil", got)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrUnknownSection, "error 1")
	err2 := errors.New(errors.ErrUnknownSection, "error 2")
	err3 := errors.New(errors.ErrPersistFailure, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with WpconfError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrUnknownSection, "not found"),
			code:     errors.ErrUnknownSection,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrUnknownSection, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrPersistFailure, "denied"),
			code:     errors.ErrPersistFailure,
			expected: true,
		},
		{
			name:     "non_wpconf_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrUnknownSection,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrUnknownSection,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "wpconf_error",
			err:      errors.New(errors.ErrMalformedMarkers, "bad template"),
			expected: errors.ErrMalformedMarkers,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	persistErr := errors.Wrap(rootCause, errors.ErrPersistFailure, "cannot rename")
	stepErr := errors.Wrap(persistErr, errors.ErrStepFailed, "build failed")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(stepErr, errors.ErrStepFailed) {
			t.Error("Top level should have ErrStepFailed code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var wErr *errors.WpconfError
		if stderrors.As(stepErr.Unwrap(), &wErr) {
			if !errors.IsErrorCode(wErr, errors.ErrPersistFailure) {
				t.Error("Middle error should have ErrPersistFailure code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(stepErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
