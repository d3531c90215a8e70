package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := newStartConfig(nil)
	if cfg.title != "" {
		t.Fatalf("default title = %q, want empty", cfg.title)
	}

	cfg = newStartConfig([]StartOption{WithTitle("a"), WithTitle("+easy * b")})
	if cfg.title != "+easy * b" {
		t.Fatalf("title = %q, want last option to win", cfg.title)
	}
}
