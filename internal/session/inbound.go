package session

import (
	"io"

	chaterr "p2pchat/internal/errors"
	"p2pchat/internal/message"
)

// receive is the inbound unit.  It blocks on the connection, prints
// every unit the framer yields, and ends the whole session as soon as
// the peer hangs up or a read fails.
func (s *Session) receive() {
	f := message.NewFramer(s.opts.Framing, s.Conn, s.opts.BufferSize)
	for {
		unit, err := f.Next()
		if err != nil {
			s.endInbound(err)
			return
		}
		s.Metrics.Received(len(unit))
		s.Console.Println(message.Display(s.opts.Label, unit))
	}
}

func (s *Session) endInbound(err error) {
	if chaterr.Is(err, io.EOF) {
		if s.terminate(ReasonPeerClosed, nil) {
			s.Console.Println(NoticeDisconnected)
		}
		return
	}

	// After a local shutdown the pending read fails with "use of closed
	// network connection"; terminate has already run and this is a no-op.
	werr := chaterr.Wrap("read", s.Conn.PeerAddr(), err)
	if s.terminate(ReasonReceiveError, werr) {
		s.Console.Printf(NoticeReceiveError, err)
	}
}
