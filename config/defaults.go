package config

import (
	"time"

	"p2pchat/internal/message"
)

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags, config file parsing, and environment variable
// loading.

const (
	// DefaultFraming is how inbound bytes are split for display.
	DefaultFraming = string(message.FramingLine)

	// DefaultMaxMessage is the outbound limit in bytes, newline included.
	DefaultMaxMessage = message.DefaultMaxSize

	// DefaultBufferSize bounds a single read from the connection.
	DefaultBufferSize = message.DefaultBufferSize

	// DefaultLabel prefixes every displayed inbound message.
	DefaultLabel = "Peer"

	// DefaultVerbosity shows warnings and errors on stderr.
	DefaultVerbosity = 1

	// DefaultConnTimeout of zero leaves the dial bounded only by the
	// operating system and by interrupts.
	DefaultConnTimeout = 0 * time.Second

	// MinMaxMessage leaves room for one byte plus the newline.
	MinMaxMessage = 2

	// MinBufferSize keeps the read loop from degenerating into
	// byte-at-a-time reads.
	MinBufferSize = 16
)

// Default returns a Config with every tuneable set to its default.
func Default() *Config {
	return &Config{
		Framing:    DefaultFraming,
		MaxMessage: DefaultMaxMessage,
		BufferSize: DefaultBufferSize,
		Label:      DefaultLabel,
		Verbose:    DefaultVerbosity,
		Timeout:    DefaultConnTimeout,
	}
}
