package errors

import (
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{
			name: "direct coded error",
			err:  New(ErrCodeTimeout, "deadline exceeded"),
			want: ErrCodeTimeout,
		},
		{
			name: "wrapped coded error",
			err:  fmt.Errorf("waitfor: %w", New(ErrCodeInvalidCondition, "bad expression")),
			want: ErrCodeInvalidCondition,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
			want: ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"unknown command", New(ErrCodeUnknownCommand, "no such command"), ExitUnknownCommand},
		{"unknown instance command", New(ErrCodeUnknownInstanceCommand, "no such instance command"), ExitUnknownInstanceCommand},
		{"timeout", New(ErrCodeTimeout, "deadline exceeded"), ExitTimeout},
		{"upstream", New(ErrCodeUpstream, "cmdb unreachable"), ExitUsage},
		{"plain", fmt.Errorf("boom"), ExitUsage},
		{"wrapped timeout", fmt.Errorf("waitfor: %w", New(ErrCodeTimeout, "deadline exceeded")), ExitTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeUpstream, cause, "query failed")

	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
	if got := err.Error(); got != "query failed: connection refused" {
		t.Errorf("Error() = %q", got)
	}
}
