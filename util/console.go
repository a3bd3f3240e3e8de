package util

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Console serialises user-facing output.  The inbound and outbound
// halves of a session both print, and a line must never be torn in two.
type Console struct {
	mu    sync.Mutex
	out   io.Writer
	quiet bool
}

// NewConsole returns a Console writing to w (os.Stdout when nil).  A
// quiet console drops Status lines but still prints chat traffic and
// notices.
func NewConsole(w io.Writer, quiet bool) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{out: w, quiet: quiet}
}

// Println writes one line.
func (c *Console) Println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, s)
}

// Printf writes a formatted line; a trailing newline is added.
func (c *Console) Printf(format string, args ...interface{}) {
	c.Println(fmt.Sprintf(format, args...))
}

// Status writes a banner or progress line unless the console is quiet.
func (c *Console) Status(format string, args ...interface{}) {
	if c.quiet {
		return
	}
	c.Printf(format, args...)
}
