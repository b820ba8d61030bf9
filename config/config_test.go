package config

import "testing"

func TestLoadPartialOverride(t *testing.T) {
	raw := []byte(`{"maxFps": 30}`)
	cfg, err := Load(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxFPS != 30 {
		t.Errorf("expected MaxFPS override to 30, got %d", cfg.MaxFPS)
	}
	if cfg.GridWidth != Default().GridWidth {
		t.Errorf("expected GridWidth to keep default %d, got %d", Default().GridWidth, cfg.GridWidth)
	}
}

func TestLoadPreservesExtraFields(t *testing.T) {
	raw := []byte(`{"maxFps": 30, "font": "terminus", "screen": {"w": 1920, "h": 1080}}`)
	cfg, err := Load(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Extra) == 0 {
		t.Fatal("expected extra fields to be preserved")
	}
}

func TestTickIntervalDefaultsTo60Hz(t *testing.T) {
	cfg := &Config{}
	if got, want := cfg.TickInterval(), Default().TickInterval(); got != want {
		t.Errorf("expected zero-value MaxFPS to fall back to 60hz interval, got %v want %v", got, want)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	_, err := Load([]byte(`{not json`))
	if err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
