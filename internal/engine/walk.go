package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rfind/rfind/internal/match"
	"github.com/rfind/rfind/internal/types"
)

// Config controls a single search run.
type Config struct {
	Root    string
	Options match.Options
	Verbose bool
	// OnError receives recoverable failures when Verbose is set. path is empty
	// for run-wide problems such as a malformed name pattern.
	OnError func(path string, err error)
}

// Stats summarizes a completed walk.
type Stats struct {
	Dirs    int
	Entries int
	Matches int
	Errors  int
}

// RootError is returned when the starting directory cannot be listed.
type RootError struct {
	Path string
	Err  error
}

func (e *RootError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *RootError) Unwrap() error { return e.Err }

// frame is one open directory listing on the explicit walk stack.
type frame struct {
	dir     string
	entries []fs.DirEntry
	next    int
}

type walker struct {
	cfg   Config
	stats Stats
}

func (w *walker) fail(path, op string, err error) {
	w.stats.Errors++
	if !w.cfg.Verbose || w.cfg.OnError == nil {
		return
	}
	// the path is reported separately; keep only the cause
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	w.cfg.OnError(path, fmt.Errorf("%s: %w", op, err))
}

// Walk visits the tree under cfg.Root depth-first and calls emit for each
// matching entry in pre-order. Every directory is descended into whether or
// not it matched. Per-entry and per-directory failures are recoverable; only
// an unreadable root or a cancelled ctx ends the walk with an error.
func Walk(ctx context.Context, cfg Config, fsys FS, emit func(types.Entry)) (Stats, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	w := &walker{cfg: cfg}
	m, err := match.Compile(cfg.Options)
	if err != nil {
		w.fail("", "compile", err)
	}

	entries, err := fsys.ReadDir(cfg.Root)
	if err != nil {
		if len(entries) == 0 {
			return w.stats, &RootError{Path: cfg.Root, Err: err}
		}
		w.fail(cfg.Root, "read directory", err)
	}
	w.stats.Dirs++

	stack := []*frame{{dir: cfg.Root, entries: entries}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return w.stats, err
		}
		top := stack[len(stack)-1]
		if top.next >= len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		d := top.entries[top.next]
		top.next++
		w.stats.Entries++

		e := w.entry(top.dir, d)
		if m.Match(e) {
			w.stats.Matches++
			emit(e)
		}
		if e.Kind != types.KindDir {
			continue
		}
		children, err := fsys.ReadDir(e.Path)
		if err != nil {
			w.fail(e.Path, "read directory", err)
			if len(children) == 0 {
				continue
			}
		}
		w.stats.Dirs++
		stack = append(stack, &frame{dir: e.Path, entries: children})
	}
	return w.stats, nil
}

func (w *walker) entry(dir string, d fs.DirEntry) types.Entry {
	p := joinPath(dir, d.Name())
	return types.Entry{
		Path: p,
		Name: d.Name(),
		Kind: types.KindOf(d.Type()),
		Stat: func() (types.Metadata, error) {
			info, err := d.Info()
			if err != nil {
				w.fail(p, "stat", err)
				return types.Metadata{}, err
			}
			return types.MetadataFromInfo(info), nil
		},
	}
}

// joinPath keeps the root exactly as the user spelled it ("./a", "/etc").
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

// Search walks cfg.Root on the host filesystem and returns matched paths.
func Search(ctx context.Context, cfg Config) ([]string, Stats, error) {
	var out []string
	stats, err := Walk(ctx, cfg, OSFS(), func(e types.Entry) {
		out = append(out, e.Path)
	})
	return out, stats, err
}
