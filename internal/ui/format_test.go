package ui

import (
	"testing"
	"time"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		remaining time.Duration
		want      string
	}{
		{25 * time.Minute, "25:00"},
		{5*time.Minute + 9*time.Second, "05:09"},
		{59 * time.Second, "00:59"},
		{0, "00:00"},
		{-3 * time.Second, "00:00"},
		{99 * time.Minute, "99:00"},
	}

	for _, tc := range tests {
		if got := FormatRemaining(tc.remaining); got != tc.want {
			t.Errorf("FormatRemaining(%v) = %q, want %q", tc.remaining, got, tc.want)
		}
	}
}
