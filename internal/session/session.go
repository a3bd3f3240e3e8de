// Package session runs a duplex chat over one established connection.
//
// Two units share the connection.  The inbound unit reads from the
// connection and prints what arrives; the outbound unit reads local
// input and sends it.  Whichever unit first sees an end condition
// (peer hung up, I/O error, end of input, interrupt) records the
// reason and raises a shutdown signal that the other unit observes.
// The connection is then closed exactly once and Run returns.
//
// No ordering is guaranteed between a line typed locally and a line
// arriving from the peer: each is printed when its own read returns.
package session

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"p2pchat/internal/message"
	"p2pchat/internal/metrics"
	"p2pchat/internal/transport"
	"p2pchat/util"
)

// Notices printed on the console.
const (
	NoticeDisconnected = "\n[Connection lost or peer disconnected]"
	NoticeReceiveError = "\n[Error receiving message: %v]"
	NoticeSendFailed   = "Failed to send message or connection lost"
	NoticeTooLong      = "Message too long (max %d characters)"
	NoticeExiting      = "\n[Exiting...]"
)

// Options tunes a Session.  Zero values select the defaults.
type Options struct {
	Framing    message.Framing
	MaxMessage int    // outbound limit including newline
	BufferSize int    // inbound read size
	Label      string // prefix for displayed inbound units
}

func (o *Options) withDefaults() Options {
	out := *o
	if out.Framing == "" {
		out.Framing = message.FramingLine
	}
	if out.MaxMessage <= 0 {
		out.MaxMessage = message.DefaultMaxSize
	}
	if out.BufferSize <= 0 {
		out.BufferSize = message.DefaultBufferSize
	}
	if out.Label == "" {
		out.Label = "Peer"
	}
	return out
}

// Session encapsulates the runtime context for one chat connection.
type Session struct {
	Conn    *transport.Conn
	Stdin   io.Reader
	Console *util.Console
	Logger  *util.Logger
	Metrics *metrics.Collector

	opts Options

	state  atomic.Int32
	once   sync.Once
	cancel context.CancelFunc
	reason Reason
	err    error
}

// New creates a Session bound to conn, reading local input from stdin
// and printing to console.  metrics may be nil.
func New(conn *transport.Conn, stdin io.Reader, console *util.Console,
	logger *util.Logger, m *metrics.Collector, opts Options) *Session {
	if console == nil {
		console = util.NewConsole(nil, false)
	}
	return &Session{
		Conn:    conn,
		Stdin:   stdin,
		Console: console,
		Logger:  logger,
		Metrics: m,
		opts:    opts.withDefaults(),
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return State(s.state.Load()) }

// Run moves messages in both directions until either direction ends or
// ctx is cancelled, then closes the connection and returns why the
// session ended.  The returned error is non-nil only for transport or
// input failures.
func (s *Session) Run(ctx context.Context) (Reason, error) {
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.cancel = cancel

	s.state.Store(int32(StateRunning))
	s.Logger.Debug("session running with %s (%s framing)", s.Conn.PeerAddr(), s.opts.Framing)

	inboundDone := make(chan struct{})
	go func() {
		defer close(inboundDone)
		s.receive()
	}()

	s.send(ctx, parent)

	s.shutdown()
	<-inboundDone

	s.state.Store(int32(StateTerminated))
	s.Logger.Verbose("session ended: %s", s.reason)
	return s.reason, s.err
}

// terminate records the first end condition and signals both units.
// It reports whether this call was the first.
func (s *Session) terminate(r Reason, err error) bool {
	first := false
	s.once.Do(func() {
		first = true
		s.reason = r
		s.err = err
		s.state.Store(int32(StateTerminating))
		if err != nil {
			s.Metrics.RecordError(err.Error())
		}
		if s.cancel != nil {
			s.cancel()
		}
	})
	return first
}

// shutdown closes the connection.  Safe to call more than once.
func (s *Session) shutdown() {
	if err := s.Conn.Close(); err != nil {
		s.Logger.Debug("close: %v", err)
	}
}
