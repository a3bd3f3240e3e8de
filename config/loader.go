package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Config file  (file.go)
//   4. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the P2PCHAT_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// ConfigFileEnv names the variable that points at a TOML config file.
const ConfigFileEnv = "P2PCHAT_CONFIG"

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  Call it after LoadFile and
// before applying CLI flags so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("P2PCHAT_FRAMING"); v != "" {
		cfg.Framing = v
	}
	if v := envInt("P2PCHAT_MAX_MESSAGE"); v > 0 {
		cfg.MaxMessage = v
	}
	if v := envInt("P2PCHAT_BUFFER"); v > 0 {
		cfg.BufferSize = v
	}
	if v := envInt("P2PCHAT_TIMEOUT"); v > 0 {
		cfg.Timeout = secondsDuration(v)
	}
	if v := os.Getenv("P2PCHAT_LABEL"); v != "" {
		cfg.Label = v
	}
	if envBool("P2PCHAT_NO_DNS") {
		cfg.NoDNS = true
	}

	// Output
	if v := os.Getenv("P2PCHAT_VERBOSE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Verbose = n
		}
	}
	if envBool("P2PCHAT_QUIET") {
		cfg.Quiet = true
	}
	if envBool("P2PCHAT_STATS") {
		cfg.Stats = true
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}

func secondsDuration(sec int) time.Duration {
	return time.Duration(sec) * time.Second
}
