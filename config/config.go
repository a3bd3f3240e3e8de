// Package config defines the runtime configuration for p2pchat and the
// helpers that turn command-line words into a validated Config.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	chaterr "p2pchat/internal/errors"
	"p2pchat/internal/message"
	"p2pchat/util"
)

// Mode selects which side of the connection this process plays.
type Mode string

const (
	ModeServer Mode = "server" // listen for exactly one peer
	ModeClient Mode = "client" // dial a listening peer
)

// Config holds every tuneable for a single chat session.
type Config struct {
	// ── Connection ───────────────────────────────────────────────────
	Mode    Mode
	Host    string // client only
	Port    int
	Timeout time.Duration // client dial timeout, 0 = none
	NoDNS   bool

	// ── Session ──────────────────────────────────────────────────────
	Framing    string
	MaxMessage int
	BufferSize int
	Label      string

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
	Quiet   bool
	Stats   bool

	ConfigFile string
}

// ParsePort accepts a decimal TCP port in 1–65535.
func ParsePort(s string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &chaterr.ConfigError{
			Field:   "port",
			Value:   s,
			Message: "invalid port number",
			Hint:    "the port must be a number between 1 and 65535",
		}
	}
	if port < 1 || port > 65535 {
		return 0, &chaterr.ConfigError{
			Field:   "port",
			Value:   port,
			Message: "out of range 1-65535",
			Hint:    "use a port between 1 and 65535",
		}
	}
	return port, nil
}

// Address returns the address to listen on (server) or dial (client).
func (c *Config) Address() string {
	if c.Mode == ModeServer {
		return util.WildcardAddr(c.Port)
	}
	return util.FormatAddr(c.Host, c.Port)
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeServer, ModeClient:
	default:
		return &chaterr.ConfigError{
			Field:   "mode",
			Value:   string(c.Mode),
			Message: "unknown mode",
			Hint:    "use 'server' or 'client'",
		}
	}

	if c.Port < 1 || c.Port > 65535 {
		return &chaterr.ConfigError{
			Field:   "port",
			Value:   c.Port,
			Message: "out of range 1-65535",
			Hint:    "use a port between 1 and 65535",
		}
	}

	if c.Mode == ModeClient {
		if c.Host == "" {
			return &chaterr.ConfigError{
				Field:   "host",
				Message: "required in client mode",
				Hint:    "p2pchat client <host> <port>",
			}
		}
		if c.NoDNS && net.ParseIP(c.Host) == nil {
			return &chaterr.ConfigError{
				Field:   "host",
				Value:   c.Host,
				Message: "not a numeric IP address (DNS disabled with -n)",
				Hint:    "pass an address such as 192.168.1.10, or drop --no-dns",
			}
		}
	}

	if _, err := message.ParseFraming(c.Framing); err != nil {
		return &chaterr.ConfigError{
			Field:   "framing",
			Value:   c.Framing,
			Message: err.Error(),
		}
	}

	if c.MaxMessage < MinMaxMessage {
		return &chaterr.ConfigError{
			Field:   "max-message",
			Value:   c.MaxMessage,
			Message: fmt.Sprintf("must be at least %d", MinMaxMessage),
		}
	}

	if c.BufferSize < MinBufferSize {
		return &chaterr.ConfigError{
			Field:   "buffer",
			Value:   c.BufferSize,
			Message: fmt.Sprintf("must be at least %d", MinBufferSize),
		}
	}

	if c.Timeout < 0 {
		return &chaterr.ConfigError{
			Field:   "timeout",
			Value:   c.Timeout,
			Message: "must not be negative",
		}
	}

	if c.Label == "" {
		return &chaterr.ConfigError{
			Field:   "label",
			Message: "must not be empty",
		}
	}

	return nil
}
