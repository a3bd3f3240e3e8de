package transport

import (
	"context"
	"net"
	"time"

	chaterr "p2pchat/internal/errors"
)

// TCPDialer establishes plain TCP connections.
type TCPDialer struct {
	Timeout time.Duration // 0 = no timeout beyond ctx
}

// Dial connects to address over TCP.
func (d *TCPDialer) Dial(ctx context.Context, address string) (*Conn, error) {
	dialer := net.Dialer{Timeout: d.Timeout}

	c, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, chaterr.Wrap("dial", address, err)
	}
	return NewConn(c, RoleDialer), nil
}

// Close is a no-op for stateless TCP dialers.
func (d *TCPDialer) Close() error { return nil }
