package session

import (
	"bufio"
	"context"
	"io"

	chaterr "p2pchat/internal/errors"
	"p2pchat/internal/message"
)

type inputLine struct {
	text string
	err  error
}

// send is the outbound unit and runs on the caller's goroutine.  Local
// input is pumped through a channel so that a shutdown raised by the
// inbound unit, or an interrupt, is seen even while no one is typing.
func (s *Session) send(ctx, parent context.Context) {
	lines := make(chan inputLine)
	go s.pumpInput(ctx, lines)

	for {
		select {
		case <-ctx.Done():
			if parent.Err() != nil && s.terminate(ReasonInterrupted, nil) {
				s.Console.Println(NoticeExiting)
			}
			return

		case in := <-lines:
			if in.text != "" && !s.transmit(in.text) {
				return
			}
			if in.err != nil {
				s.endOutbound(in.err)
				return
			}
		}
	}
}

// pumpInput reads local input line by line.  A read blocked on a
// terminal cannot be interrupted, so once ctx is done the goroutine
// stops handing lines over and is abandoned with the process.
func (s *Session) pumpInput(ctx context.Context, lines chan<- inputLine) {
	r := bufio.NewReader(s.Stdin)
	for {
		text, err := r.ReadString('\n')
		select {
		case lines <- inputLine{text: text, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil {
			return
		}
	}
}

// transmit validates and sends one line.  It returns false when the
// connection is no longer usable.
func (s *Session) transmit(text string) bool {
	msg, err := message.Normalize(text, s.opts.MaxMessage)
	switch {
	case chaterr.Is(err, chaterr.ErrEmptyMessage):
		return true
	case chaterr.Is(err, chaterr.ErrMessageTooLong):
		s.Metrics.Rejected()
		s.Console.Printf(NoticeTooLong, s.opts.MaxMessage)
		return true
	}

	n, err := s.Conn.Write(msg)
	if n == 0 || err != nil {
		if err == nil {
			err = io.ErrShortWrite
		}
		werr := chaterr.Wrap("write", s.Conn.PeerAddr(), err)
		if s.terminate(ReasonSendFailed, werr) {
			s.Console.Println(NoticeSendFailed)
		}
		return false
	}
	s.Metrics.Sent(n)
	s.Logger.Debug("sent %d bytes", n)
	return true
}

func (s *Session) endOutbound(err error) {
	if chaterr.Is(err, io.EOF) {
		s.terminate(ReasonLocalEOF, nil)
		return
	}
	if s.terminate(ReasonInputError, err) {
		s.Console.Printf("Error: %v", err)
	}
}
