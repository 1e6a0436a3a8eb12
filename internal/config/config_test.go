package config

import (
	"testing"
	"time"
)

func TestTTL(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"", 24 * time.Hour},
		{"garbage", 24 * time.Hour},
		{"-1h", 24 * time.Hour},
		{"12h", 12 * time.Hour},
		{"90m", 90 * time.Minute},
	}
	for _, tc := range cases {
		cfg := &Config{CacheTTL: tc.in}
		if got := cfg.TTL(); got != tc.want {
			t.Errorf("TTL(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestExpandPath(t *testing.T) {
	if got, err := ExpandPath("/abs/path"); err != nil || got != "/abs/path" {
		t.Fatalf("absolute path should pass through: %q %v", got, err)
	}
	got, err := ExpandPath("~/x")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got == "~/x" || got == "" {
		t.Fatalf("~ not expanded: %q", got)
	}
}
