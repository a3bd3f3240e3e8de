package core

import (
	"context"
	"fmt"

	"p2pchat/internal/transport"
)

// ServerMode binds a port, accepts exactly one peer, stops listening,
// and chats with that peer.
type ServerMode struct {
	Address string // ":port" for every interface
	Runtime

	// Bound, when set, receives the listening port once the socket is
	// bound.  Tests use it to dial a server started on port 0.
	Bound chan<- int
}

// Run listens, accepts one peer, and runs the session.
func (m *ServerMode) Run(ctx context.Context) error {
	l, err := transport.Listen(ctx, m.Address)
	if err != nil {
		return fmt.Errorf("server: %w", err)
	}

	c := m.console()
	c.Status("Server listening on port %d...", l.Port())
	c.Status("Waiting for client to connect...")
	m.Logger.Verbose("listening on %s (tcp)", l.Addr())
	if m.Bound != nil {
		m.Bound <- l.Port()
	}

	conn, err := l.AcceptOne(ctx)
	if err != nil {
		if ctx.Err() != nil {
			m.interrupted()
			return nil
		}
		return fmt.Errorf("server: %w", err)
	}
	m.Logger.Verbose("connection from %s; listener closed", conn.PeerAddr())

	c.Status("Client connected from %s", conn.PeerAddr())
	m.chat(ctx, conn)
	return nil
}
