package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rfind/rfind/internal/engine"
)

func TestPathWriter_Newlines(t *testing.T) {
	var buf bytes.Buffer
	pw := NewPathWriter(&buf, PrintOptions{})
	pw.Write("root/a.txt")
	pw.Write("root/sub/b.txt")
	if err := pw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "root/a.txt\nroot/sub/b.txt\n" {
		t.Fatalf("unexpected output %q", got)
	}
	if pw.Count() != 2 {
		t.Fatalf("count=%d want 2", pw.Count())
	}
}

func TestPathWriter_Print0(t *testing.T) {
	var buf bytes.Buffer
	pw := NewPathWriter(&buf, PrintOptions{Print0: true})
	pw.Write("a b")
	pw.Write("c")
	_ = pw.Flush()
	if got := buf.String(); got != "a b\x00c\x00" {
		t.Fatalf("unexpected output %q", got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestPathWriter_ErrorSurfacesOnFlush(t *testing.T) {
	pw := NewPathWriter(failWriter{}, PrintOptions{})
	pw.Write("x")
	if err := pw.Flush(); err == nil || !strings.Contains(err.Error(), "broken pipe") {
		t.Fatalf("expected broken pipe error, got %v", err)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, engine.Stats{Dirs: 3, Entries: 10, Matches: 2, Errors: 1}, PrintOptions{Duration: 1500 * time.Millisecond})
	out := buf.String()
	if !strings.Contains(out, "Searched 3 directories, 10 entries: 2 matches, 1 errors in 1.50s") {
		t.Fatalf("unexpected summary %q", out)
	}
}
