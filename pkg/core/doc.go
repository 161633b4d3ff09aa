// Package core provides a small, stable facade over rfind's internal engine
// for external integrations. It re-exports a narrow API surface so other
// tools can depend on a stable import path without importing internals.
//
// Example:
//
//	pattern := "*.go"
//	cfg := core.Config{Root: ".", Options: core.Options{Pattern: pattern, CaseSensitive: true}}
//	paths, err := core.Search(ctx, cfg)
//	if err != nil { /* handle */ }
//	_ = core.MarshalPaths(os.Stdout, paths)
package core
