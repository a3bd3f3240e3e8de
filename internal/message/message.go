// Package message defines the text messages exchanged by two peers:
// how a locally typed line becomes an outbound message, and how inbound
// bytes are cut into displayable units.
//
// The wire format is plain UTF-8 text, one line per message, terminated
// by a single newline.  There is no header, length prefix, or escaping.
package message

import (
	"strings"

	chaterr "p2pchat/internal/errors"
)

const (
	// DefaultMaxSize is the largest outbound message in bytes, trailing
	// newline included.
	DefaultMaxSize = 512

	// DefaultBufferSize bounds a single read from the connection.
	DefaultBufferSize = 1024
)

// Normalize turns a line of local input into the bytes put on the wire.
// One trailing "\n" (or "\r\n") is stripped and exactly one "\n" is
// re-appended.  An empty line yields ErrEmptyMessage; a message whose
// normalized length exceeds max yields ErrMessageTooLong.
func Normalize(line string, max int) ([]byte, error) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return nil, chaterr.ErrEmptyMessage
	}
	if max > 0 && len(line)+1 > max {
		return nil, chaterr.ErrMessageTooLong
	}
	out := make([]byte, 0, len(line)+1)
	out = append(out, line...)
	return append(out, '\n'), nil
}

// Display formats an inbound unit for the terminal: "<label>: <text>"
// with trailing whitespace removed.
func Display(label, text string) string {
	return label + ": " + strings.TrimRight(text, " \t\r\n\v\f")
}
