package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := newStartConfig(nil)
	if cfg.mode != ModeFix || cfg.total != 0 {
		t.Fatalf("default config = %+v, want fix mode with zero total", cfg)
	}

	cfg = newStartConfig([]StartOption{WithFixMode(7)})
	if cfg.mode != ModeFix || cfg.total != 7 {
		t.Fatalf("WithFixMode(7) config = %+v", cfg)
	}

	cfg = newStartConfig([]StartOption{WithFixMode(3), WithListMode()})
	if cfg.mode != ModeList {
		t.Fatalf("WithListMode() mode = %v, want %v", cfg.mode, ModeList)
	}
}
