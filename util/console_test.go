package util

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"
)

func TestConsole_Println(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)
	c.Println("Peer: hi")
	c.Printf("Message too long (max %d characters)", 512)

	want := "Peer: hi\nMessage too long (max 512 characters)\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestConsole_QuietDropsStatus(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, true)
	c.Status("Server listening on port %d...", 9009)
	c.Println("Peer: still shown")

	if strings.Contains(buf.String(), "listening") {
		t.Errorf("quiet console printed a status line: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "Peer: still shown") {
		t.Errorf("quiet console dropped chat traffic: %q", buf.String())
	}
}

func TestConsole_ConcurrentLinesStayWhole(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, false)

	line := strings.Repeat("z", 200)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Println(line)
		}()
	}
	wg.Wait()

	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l != line {
			t.Fatalf("torn line: %q", l)
		}
	}
}

func TestIsInteractive_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsInteractive(f) {
		t.Error("a regular file is not a terminal")
	}
	if IsInteractive(nil) {
		t.Error("nil file is not a terminal")
	}
}
