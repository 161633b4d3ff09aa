package core

import (
	"context"

	"github.com/rfind/rfind/internal/engine"
	"github.com/rfind/rfind/internal/match"
	"github.com/rfind/rfind/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type (
	Config   = engine.Config
	Stats    = engine.Stats
	FS       = engine.FS
	Options  = match.Options
	Flags    = match.Flags
	PermSpec = match.PermSpec
	Entry    = types.Entry
	Kind     = types.Kind
	KindSet  = types.KindSet
)

const (
	KindFile = types.KindFile
	KindDir  = types.KindDir
)

// Kinds builds a type filter; no arguments means files and directories.
func Kinds(kinds ...Kind) KindSet {
	if len(kinds) == 0 {
		return types.AllKinds()
	}
	return types.NewKindSet(kinds...)
}

// ParsePerm parses "644" or "/4000" style permission filters.
func ParsePerm(s string) (PermSpec, error) { return match.ParsePermSpec(s) }

// Search is the stable entrypoint for other programs. It walks the host
// filesystem and returns matched paths in visitation order.
func Search(ctx context.Context, cfg Config) ([]string, error) {
	paths, _, err := engine.Search(ctx, cfg)
	return paths, err
}

// Walk streams matches from fsys to emit.
func Walk(ctx context.Context, cfg Config, fsys FS, emit func(Entry)) (Stats, error) {
	return engine.Walk(ctx, cfg, fsys, emit)
}
