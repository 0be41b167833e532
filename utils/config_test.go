package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	if config != DefaultConfig() {
		t.Fatal("missing config file did not fall back to defaults")
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"frame_rate": 50000000, "viewport_width": 10, "auto_reseed": false}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if config.FrameRate != 50*time.Millisecond {
		t.Fatalf("frame rate = %v, expected 50ms", config.FrameRate)
	}
	if config.ViewportWidth != 10 {
		t.Fatalf("viewport width = %d, expected 10", config.ViewportWidth)
	}
	if config.AutoReseed {
		t.Fatal("auto_reseed override ignored")
	}
	// Untouched keys keep their defaults.
	if config.ViewportHeight != DefaultConfig().ViewportHeight {
		t.Fatal("viewport height default was lost")
	}
}

func TestLoadConfigRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed config file was accepted")
	}
}
