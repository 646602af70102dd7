package controller

import "testing"

func TestOptions(t *testing.T) {
	cfg := newConfig()
	if cfg.stats {
		t.Fatalf("newConfig() stats = true, want false")
	}

	cfg = newConfig(WithStats())
	if !cfg.stats {
		t.Fatalf("WithStats() stats = false, want true")
	}
}
