package config

import (
	"fmt"

	"github.com/pelletier/go-toml"
)

// fileConfig mirrors the keys accepted in a TOML config file:
//
//	framing     = "line"
//	max-message = 512
//	buffer-size = 1024
//	timeout     = 10      # seconds
//	label       = "Peer"
//	no-dns      = false
//	verbose     = 1
//	quiet       = false
//	stats       = false
type fileConfig struct {
	Framing    string `toml:"framing"`
	MaxMessage int    `toml:"max-message"`
	BufferSize int    `toml:"buffer-size"`
	Timeout    int    `toml:"timeout"`
	Label      string `toml:"label"`
	NoDNS      bool   `toml:"no-dns"`
	Verbose    int    `toml:"verbose"`
	Quiet      bool   `toml:"quiet"`
	Stats      bool   `toml:"stats"`
}

// LoadFile overlays the keys present in the TOML file at path onto cfg.
// Keys absent from the file leave cfg untouched.
func LoadFile(path string, cfg *Config) error {
	tree, err := toml.LoadFile(path)
	if err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := tree.Unmarshal(&fc); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	if tree.Has("framing") {
		cfg.Framing = fc.Framing
	}
	if tree.Has("max-message") {
		cfg.MaxMessage = fc.MaxMessage
	}
	if tree.Has("buffer-size") {
		cfg.BufferSize = fc.BufferSize
	}
	if tree.Has("timeout") {
		cfg.Timeout = secondsDuration(fc.Timeout)
	}
	if tree.Has("label") {
		cfg.Label = fc.Label
	}
	if tree.Has("no-dns") {
		cfg.NoDNS = fc.NoDNS
	}
	if tree.Has("verbose") {
		cfg.Verbose = fc.Verbose
	}
	if tree.Has("quiet") {
		cfg.Quiet = fc.Quiet
	}
	if tree.Has("stats") {
		cfg.Stats = fc.Stats
	}
	cfg.ConfigFile = path
	return nil
}
