package report

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/rfind/rfind/internal/engine"
)

type PrintOptions struct {
	// Print0 terminates each path with NUL instead of newline.
	Print0   bool
	Duration time.Duration
}

// PathWriter streams matched paths in the order they are written.
type PathWriter struct {
	w    *bufio.Writer
	term byte
	n    int
	err  error
}

func NewPathWriter(w io.Writer, opts PrintOptions) *PathWriter {
	term := byte('\n')
	if opts.Print0 {
		term = 0
	}
	return &PathWriter{w: bufio.NewWriter(w), term: term}
}

// Write emits one path. After the first write error all later writes are
// dropped and the error is returned from Flush.
func (p *PathWriter) Write(path string) {
	if p.err != nil {
		return
	}
	if _, err := p.w.WriteString(path); err != nil {
		p.err = err
		return
	}
	if err := p.w.WriteByte(p.term); err != nil {
		p.err = err
		return
	}
	p.n++
}

// Count returns the number of paths written so far.
func (p *PathWriter) Count() int { return p.n }

func (p *PathWriter) Flush() error {
	if p.err != nil {
		return p.err
	}
	return p.w.Flush()
}

// PrintSummary writes the one-line verbose footer.
func PrintSummary(w io.Writer, stats engine.Stats, opts PrintOptions) {
	fmt.Fprintf(w, "Searched %d directories, %d entries: %d matches, %d errors", stats.Dirs, stats.Entries, stats.Matches, stats.Errors)
	if opts.Duration > 0 {
		fmt.Fprintf(w, " in %.2fs", opts.Duration.Seconds())
	}
	fmt.Fprintln(w)
}
