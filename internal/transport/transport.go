// Package transport obtains the single connection a chat runs over.
// It knows how to dial a remote listener and how to listen for exactly
// one inbound peer; it knows nothing about what is said on the
// connection (which is the session layer's job).
package transport

import "context"

// Role records how a connection was obtained.
type Role int

const (
	// RoleListener marks a connection accepted in listener mode.
	RoleListener Role = iota
	// RoleDialer marks a connection opened in connector mode.
	RoleDialer
)

func (r Role) String() string {
	switch r {
	case RoleListener:
		return "listener"
	case RoleDialer:
		return "dialer"
	default:
		return "unknown"
	}
}

// Dialer opens outbound connections to a remote listener.
type Dialer interface {
	// Dial connects to address ("host:port") once.  There is no retry.
	Dial(ctx context.Context, address string) (*Conn, error)

	// Close releases any long-lived resources held by the dialer.
	// Stateless dialers return nil.
	Close() error
}
