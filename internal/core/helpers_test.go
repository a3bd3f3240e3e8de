package core

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"p2pchat/internal/metrics"
	"p2pchat/util"
)

// syncBuffer is a bytes.Buffer safe to read while a mode writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, b *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(b.String(), want) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q; output so far:\n%s", want, b.String())
}

func waitErr(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(4 * time.Second):
		t.Fatal("mode did not return in time")
		return nil
	}
}

func testRuntime(out *syncBuffer) Runtime {
	return Runtime{
		Logger:  util.NewLogger(0),
		Metrics: metrics.New(),
		Console: util.NewConsole(out, false),
	}
}
