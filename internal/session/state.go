package session

import (
	"io"

	chaterr "p2pchat/internal/errors"
)

// State is the lifecycle of a Session.  It only ever moves forward.
type State int32

const (
	StateNew         State = iota // constructed, Run not called yet
	StateRunning                  // both halves active
	StateTerminating              // one half saw an end condition
	StateTerminated               // connection closed, Run returning
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateRunning:
		return "running"
	case StateTerminating:
		return "terminating"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Reason records why a session ended.  Only the first end condition is
// kept; anything that happens during teardown is a consequence of it.
type Reason int

const (
	ReasonNone         Reason = iota
	ReasonLocalEOF            // local input exhausted
	ReasonInterrupted         // ctx cancelled by the caller (signal)
	ReasonPeerClosed          // zero-byte read: the peer hung up
	ReasonReceiveError        // read failed
	ReasonSendFailed          // write failed or sent nothing
	ReasonInputError          // local input failed with something other than EOF
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonLocalEOF:
		return "local end of input"
	case ReasonInterrupted:
		return "interrupted"
	case ReasonPeerClosed:
		return "peer disconnected"
	case ReasonReceiveError:
		return "receive error"
	case ReasonSendFailed:
		return "send failed"
	case ReasonInputError:
		return "input error"
	default:
		return "unknown"
	}
}

// Graceful reports whether the reason is an ordinary way for a chat to
// end rather than a transport failure.
func (r Reason) Graceful() bool {
	switch r {
	case ReasonLocalEOF, ReasonInterrupted, ReasonPeerClosed:
		return true
	default:
		return false
	}
}

// Err returns the error value matching a graceful reason, or nil.
func (r Reason) Err() error {
	switch r {
	case ReasonLocalEOF:
		return io.EOF
	case ReasonInterrupted:
		return chaterr.ErrInterrupted
	case ReasonPeerClosed:
		return chaterr.ErrPeerClosed
	default:
		return nil
	}
}
