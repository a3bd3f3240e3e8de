package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromEnv_Session(t *testing.T) {
	t.Setenv("P2PCHAT_FRAMING", "chunk")
	t.Setenv("P2PCHAT_MAX_MESSAGE", "256")
	t.Setenv("P2PCHAT_BUFFER", "2048")
	t.Setenv("P2PCHAT_LABEL", "bob")

	cfg := Default()
	LoadFromEnv(cfg)

	if cfg.Framing != "chunk" {
		t.Errorf("Framing = %q, want chunk", cfg.Framing)
	}
	if cfg.MaxMessage != 256 {
		t.Errorf("MaxMessage = %d, want 256", cfg.MaxMessage)
	}
	if cfg.BufferSize != 2048 {
		t.Errorf("BufferSize = %d, want 2048", cfg.BufferSize)
	}
	if cfg.Label != "bob" {
		t.Errorf("Label = %q, want bob", cfg.Label)
	}
}

func TestLoadFromEnv_Booleans(t *testing.T) {
	tests := []struct {
		key    string
		values []string
	}{
		{"P2PCHAT_NO_DNS", []string{"1", "true", "yes", "TRUE", "Yes"}},
		{"P2PCHAT_QUIET", []string{"1", "true"}},
		{"P2PCHAT_STATS", []string{"yes"}},
	}

	for _, tt := range tests {
		for _, v := range tt.values {
			t.Run(tt.key+"="+v, func(t *testing.T) {
				t.Setenv(tt.key, v)
				cfg := &Config{}
				LoadFromEnv(cfg)

				var got bool
				switch tt.key {
				case "P2PCHAT_NO_DNS":
					got = cfg.NoDNS
				case "P2PCHAT_QUIET":
					got = cfg.Quiet
				case "P2PCHAT_STATS":
					got = cfg.Stats
				}
				if !got {
					t.Errorf("%s=%s should enable the option", tt.key, v)
				}
			})
		}
	}
}

func TestLoadFromEnv_Timeout(t *testing.T) {
	t.Setenv("P2PCHAT_TIMEOUT", "10")
	cfg := &Config{}
	LoadFromEnv(cfg)
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
}

func TestLoadFromEnv_VerboseZero(t *testing.T) {
	t.Setenv("P2PCHAT_VERBOSE", "0")
	cfg := Default()
	LoadFromEnv(cfg)
	if cfg.Verbose != 0 {
		t.Errorf("Verbose = %d, want 0", cfg.Verbose)
	}
}

func TestLoadFromEnv_InvalidIgnored(t *testing.T) {
	t.Setenv("P2PCHAT_MAX_MESSAGE", "lots")
	cfg := Default()
	LoadFromEnv(cfg)
	if cfg.MaxMessage != DefaultMaxMessage {
		t.Errorf("MaxMessage = %d, want default", cfg.MaxMessage)
	}
}

func TestLoadFromEnv_EmptyLeavesDefaults(t *testing.T) {
	os.Unsetenv("P2PCHAT_FRAMING")
	cfg := Default()
	LoadFromEnv(cfg)
	if cfg.Framing != DefaultFraming {
		t.Errorf("Framing = %q, want %q", cfg.Framing, DefaultFraming)
	}
}

// ── TOML file ────────────────────────────────────────────────────────

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "p2pchat.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
framing = "chunk"
max-message = 128
timeout = 5
label = "alice"
stats = true
`)
	cfg := Default()
	if err := LoadFile(path, cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Framing != "chunk" || cfg.MaxMessage != 128 || cfg.Label != "alice" {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if !cfg.Stats {
		t.Error("Stats should be true")
	}
	// Keys absent from the file keep their defaults.
	if cfg.BufferSize != DefaultBufferSize {
		t.Errorf("BufferSize = %d, want default", cfg.BufferSize)
	}
	if cfg.ConfigFile != path {
		t.Errorf("ConfigFile = %q", cfg.ConfigFile)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"), Default())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	path := writeFile(t, "framing = \n")
	if err := LoadFile(path, Default()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	path := writeFile(t, `label = "file"`)
	t.Setenv("P2PCHAT_LABEL", "env")

	cfg := Default()
	if err := LoadFile(path, cfg); err != nil {
		t.Fatal(err)
	}
	LoadFromEnv(cfg)
	if cfg.Label != "env" {
		t.Errorf("Label = %q, env should win over file", cfg.Label)
	}
}
