// Package core is the orchestration layer.  It composes a transport
// and a duplex session into the two operational modes of p2pchat and
// provides a builder that selects the right mode from a Config.
//
// Architecture layers (bottom → top):
//
//	transport  →  session  →  core  →  cmd (CLI)
package core

import (
	"context"
	"io"
	"os"

	chaterr "p2pchat/internal/errors"
	"p2pchat/internal/metrics"
	"p2pchat/internal/session"
	"p2pchat/internal/transport"
	"p2pchat/util"
)

// Mode represents a complete operational mode of p2pchat (server or
// client).  Each mode owns its full lifecycle from connection
// establishment to teardown.
//
// Run returns an error only when no connection could be established.
// Once a session has started, every way it can end is reported on the
// console and Run returns nil.
type Mode interface {
	Run(ctx context.Context) error
}

// Runtime carries the I/O endpoints and session tuning shared by both
// modes.
type Runtime struct {
	Session session.Options
	Logger  *util.Logger
	Metrics *metrics.Collector

	// Console defaults to stdout when nil.
	Console *util.Console

	// Stdin defaults to os.Stdin when nil.  Override in tests for
	// deterministic I/O.
	Stdin io.Reader

	// Interactive adds keyboard hints to the banner.
	Interactive bool

	// Stats prints a JSON session summary on exit.
	Stats bool
}

func (rt *Runtime) stdin() io.Reader {
	if rt.Stdin != nil {
		return rt.Stdin
	}
	return os.Stdin
}

func (rt *Runtime) console() *util.Console {
	if rt.Console == nil {
		rt.Console = util.NewConsole(nil, false)
	}
	return rt.Console
}

// banner announces that typing now sends messages.
func (rt *Runtime) banner() {
	c := rt.console()
	c.Status("Chat started! Type messages and press Enter.")
	if rt.Interactive {
		c.Status("Press Ctrl+C to exit.\n")
	}
}

// interrupted prints the exit notice for a signal that arrived before
// a session existed.
func (rt *Runtime) interrupted() {
	rt.Logger.Verbose("%v before the chat started", chaterr.ErrInterrupted)
	rt.console().Println(session.NoticeExiting)
}

// chat runs the duplex session on conn until it ends.
func (rt *Runtime) chat(ctx context.Context, conn *transport.Conn) {
	rt.Metrics.Connected(conn.PeerAddr())
	rt.banner()

	sess := session.New(conn, rt.stdin(), rt.console(), rt.Logger, rt.Metrics, rt.Session)
	reason, err := sess.Run(ctx)
	if err == nil {
		err = reason.Err()
	}

	switch {
	case err == nil:
	case reason.Graceful(), chaterr.IsClosed(err):
		rt.Logger.Verbose("session: %v", err)
	default:
		rt.Logger.Warn("session: %v", err)
	}
	rt.Logger.Verbose("chat with %s ended (%s); sent %d, received %d",
		conn.PeerAddr(), reason, rt.Metrics.MessagesOut(), rt.Metrics.MessagesIn())

	if rt.Stats {
		rt.console().Println(rt.Metrics.JSON())
	}
}
