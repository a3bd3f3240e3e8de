package transport

import (
	"context"
	"net"

	chaterr "p2pchat/internal/errors"
)

// Listener is a bound TCP socket that hands out exactly one connection.
type Listener struct {
	ln net.Listener
}

// Listen binds address (":port" for the wildcard address) with
// SO_REUSEADDR set, so a restarted listener does not trip over sockets
// left in TIME_WAIT.
func Listen(ctx context.Context, address string) (*Listener, error) {
	lc := net.ListenConfig{Control: reuseAddrControl}
	ln, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		return nil, chaterr.Wrap("listen", address, err)
	}
	return &Listener{ln: ln}, nil
}

// Addr returns the bound address.
func (l *Listener) Addr() net.Addr { return l.ln.Addr() }

// Port returns the bound TCP port.
func (l *Listener) Port() int {
	if a, ok := l.ln.Addr().(*net.TCPAddr); ok {
		return a.Port
	}
	return 0
}

// AcceptOne blocks until one peer connects, then closes the listening
// socket so no further peers are accepted.  Cancelling ctx aborts the
// wait; in that case the returned error wraps ctx.Err().
func (l *Listener) AcceptOne(ctx context.Context) (*Conn, error) {
	defer l.ln.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			l.ln.Close()
		case <-stop:
		}
	}()

	c, err := l.ln.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, chaterr.Wrap("accept", l.ln.Addr().String(), ctx.Err())
		}
		return nil, chaterr.Wrap("accept", l.ln.Addr().String(), err)
	}
	return NewConn(c, RoleListener), nil
}

// Close releases the listening socket without accepting.
func (l *Listener) Close() error { return l.ln.Close() }

// ListenOnce binds address, accepts a single peer, and releases the
// listening socket.
func ListenOnce(ctx context.Context, address string) (*Conn, error) {
	l, err := Listen(ctx, address)
	if err != nil {
		return nil, err
	}
	return l.AcceptOne(ctx)
}
