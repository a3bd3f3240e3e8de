package core

import (
	"context"
	"fmt"

	"p2pchat/internal/transport"
)

// ClientMode dials a listening peer once and chats with it.
type ClientMode struct {
	Dialer  transport.Dialer
	Address string // "host:port"
	Runtime
}

// Run dials the remote address and runs the session.  The dialer is
// released when Run returns.
func (m *ClientMode) Run(ctx context.Context) error {
	defer m.Dialer.Close()

	c := m.console()
	c.Status("Connecting to %s...", m.Address)

	conn, err := m.Dialer.Dial(ctx, m.Address)
	if err != nil {
		if ctx.Err() != nil {
			m.interrupted()
			return nil
		}
		return fmt.Errorf("connection error: %w", err)
	}
	m.Logger.Verbose("connected to %s from %s", conn.PeerAddr(), conn.LocalAddr())

	c.Status("Connected to server!")
	m.chat(ctx, conn)
	return nil
}
