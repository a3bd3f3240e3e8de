package message

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Framing selects how inbound bytes are grouped into display units.
type Framing string

const (
	// FramingLine buffers until a newline is seen.  Coalesced reads are
	// split into several units and split reads are joined.
	FramingLine Framing = "line"

	// FramingChunk treats whatever one read returns as one unit.  Kept
	// for wire parity with peers that rely on it.
	FramingChunk Framing = "chunk"
)

// ParseFraming validates a framing name.
func ParseFraming(s string) (Framing, error) {
	switch f := Framing(strings.ToLower(s)); f {
	case FramingLine, FramingChunk:
		return f, nil
	default:
		return "", fmt.Errorf("unknown framing %q (want %q or %q)", s, FramingLine, FramingChunk)
	}
}

// Framer yields display units from an inbound byte stream.  Next returns
// io.EOF once the peer has closed the stream and every buffered unit has
// been delivered.
type Framer interface {
	Next() (string, error)
}

// NewFramer returns the Framer for f reading from r with reads of at
// most bufSize bytes.
func NewFramer(f Framing, r io.Reader, bufSize int) Framer {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	if f == FramingChunk {
		return NewChunkFramer(r, bufSize)
	}
	return NewLineFramer(r, bufSize)
}

// ── chunk ────────────────────────────────────────────────────────────

// ChunkFramer returns the result of each read as one unit.  A sender's
// line may arrive split across units and several lines may arrive as one.
type ChunkFramer struct {
	r   io.Reader
	buf []byte
	err error
}

// NewChunkFramer returns a ChunkFramer with a bufSize read buffer.
func NewChunkFramer(r io.Reader, bufSize int) *ChunkFramer {
	return &ChunkFramer{r: r, buf: make([]byte, bufSize)}
}

// Next performs a single read.  Bytes returned together with an error
// are delivered first; the error surfaces on the following call.
func (f *ChunkFramer) Next() (string, error) {
	for f.err == nil {
		n, err := f.r.Read(f.buf)
		f.err = err
		if n > 0 {
			return string(f.buf[:n]), nil
		}
	}
	return "", f.err
}

// ── line ─────────────────────────────────────────────────────────────

// LineFramer reassembles newline-terminated lines.  A partial line that
// grows past the buffer size is flushed as its own unit so a peer that
// never sends a newline cannot grow memory without bound.  A trailing
// partial line is delivered before io.EOF.
type LineFramer struct {
	r       io.Reader
	buf     []byte
	pending []byte
	err     error
}

// NewLineFramer returns a LineFramer with a bufSize read buffer.
func NewLineFramer(r io.Reader, bufSize int) *LineFramer {
	return &LineFramer{r: r, buf: make([]byte, bufSize)}
}

// Next returns the next complete line without its newline.
func (f *LineFramer) Next() (string, error) {
	for {
		if i := bytes.IndexByte(f.pending, '\n'); i >= 0 {
			line := string(f.pending[:i])
			f.pending = f.pending[i+1:]
			return line, nil
		}
		if len(f.pending) >= len(f.buf) {
			line := string(f.pending)
			f.pending = f.pending[:0]
			return line, nil
		}
		if f.err != nil {
			if len(f.pending) > 0 {
				line := string(f.pending)
				f.pending = nil
				return line, nil
			}
			return "", f.err
		}

		n, err := f.r.Read(f.buf)
		f.pending = append(f.pending, f.buf[:n]...)
		if err != nil {
			f.err = err
		}
	}
}
