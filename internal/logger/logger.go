// Package logger writes rfind diagnostics to the error stream. Matches go to
// stdout through the report package; nothing here ever touches that stream.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Diagnostics prints one line per recoverable failure. It is safe for
// concurrent use; a nil writer discards everything.
type Diagnostics struct {
	w     io.Writer
	mu    sync.Mutex
	errC  *color.Color
	warnC *color.Color
}

// New returns a Diagnostics writing to w. Color is applied only when
// useColor is set; see ColorFor.
func New(w io.Writer, useColor bool) *Diagnostics {
	d := &Diagnostics{
		w:     w,
		errC:  color.New(color.FgRed, color.Bold),
		warnC: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{d.errC, d.warnC} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return d
}

// ColorFor reports whether w is a terminal that should receive color.
// NO_COLOR and noColor both disable it.
func ColorFor(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Error reports a failure tied to path.
func (d *Diagnostics) Error(path string, err error) {
	d.printf(d.errC.Sprint("[ ERROR ]"), "%s: %v", path, err)
}

// Warn reports a run-wide problem that does not stop the search.
func (d *Diagnostics) Warn(format string, args ...any) {
	d.printf(d.warnC.Sprint("[ WARN ]"), format, args...)
}

// Report is shaped for engine.Config.OnError.
func (d *Diagnostics) Report(path string, err error) {
	if path == "" {
		d.Warn("%v", err)
		return
	}
	d.Error(path, err)
}

func (d *Diagnostics) printf(prefix, format string, args ...any) {
	if d.w == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, _ = fmt.Fprintf(d.w, "%s %s\n", prefix, fmt.Sprintf(format, args...))
}
