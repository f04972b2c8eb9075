package analyzer

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{
			name: "config error",
			err:  ConfigError(errors.New("no API key found")),
			want: FailureConfig,
		},
		{
			name: "transport error",
			err:  transportErr("API call failed: %w", errors.New("connection refused")),
			want: FailureTransport,
		},
		{
			name: "parse error",
			err:  parseErr("no JSON object in reply"),
			want: FailureParse,
		},
		{
			name: "wrapped typed error",
			err:  fmt.Errorf("analyze: %w", parseErr("bad reply")),
			want: FailureParse,
		},
		{
			name: "untyped error defaults to transport",
			err:  errors.New("something else"),
			want: FailureTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}
