package transport

import (
	"net"
	"sync"
	"sync/atomic"
)

// Conn is the one connection shared by both halves of a chat session.
// Read and Write may be called concurrently from different goroutines;
// Close may be called any number of times from anywhere and only the
// first call closes the socket.
type Conn struct {
	net.Conn

	role     Role
	once     sync.Once
	closed   atomic.Bool
	done     chan struct{}
	closeErr error
}

// NewConn wraps an established net.Conn.
func NewConn(c net.Conn, role Role) *Conn {
	return &Conn{Conn: c, role: role, done: make(chan struct{})}
}

// Role reports whether the connection was accepted or dialed.
func (c *Conn) Role() Role { return c.role }

// PeerAddr returns the remote address for display.
func (c *Conn) PeerAddr() string {
	if a := c.Conn.RemoteAddr(); a != nil {
		return a.String()
	}
	return ""
}

// Close closes the underlying connection on the first call.  Later
// calls return nil without touching the socket.
func (c *Conn) Close() error {
	first := false
	c.once.Do(func() {
		first = true
		c.closed.Store(true)
		c.closeErr = c.Conn.Close()
		close(c.done)
	})
	if first {
		return c.closeErr
	}
	return nil
}

// Closed reports whether Close has been called.
func (c *Conn) Closed() bool { return c.closed.Load() }

// Done is closed once the connection has been closed.
func (c *Conn) Done() <-chan struct{} { return c.done }
