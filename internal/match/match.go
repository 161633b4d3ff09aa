package match

import (
	"fmt"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/rfind/rfind/internal/types"
)

// Options is the immutable predicate configuration for one run.
type Options struct {
	Pattern       string
	CaseSensitive bool
	Types         types.KindSet
	Perm          PermSpec
	Flags         Flags
}

// PatternError reports a malformed glob. The matcher stays usable; its name
// predicate simply rejects every entry.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid name pattern %q: matches nothing", e.Pattern)
}

// MatchType reports whether kind is eligible under set. An empty set admits nothing.
func MatchType(set types.KindSet, kind types.Kind) bool {
	return set.Has(kind)
}

// MatchName matches a glob against a base name. The empty pattern matches
// everything; a malformed pattern matches nothing. `*` never crosses '/'.
func MatchName(pattern, name string, caseSensitive bool) bool {
	if pattern == "" {
		return true
	}
	if !caseSensitive {
		pattern = strings.ToLower(pattern)
		name = strings.ToLower(name)
	}
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}

// Matcher is a compiled Options.
type Matcher struct {
	opts    Options
	pattern string
	// badPattern forces the name predicate to false for the whole run.
	badPattern bool
}

// Compile validates opts once. A malformed pattern still returns a usable
// Matcher together with a *PatternError for the caller to surface.
func Compile(opts Options) (*Matcher, error) {
	if opts.Types == nil {
		opts.Types = types.AllKinds()
	}
	m := &Matcher{opts: opts, pattern: opts.Pattern}
	if !opts.CaseSensitive {
		m.pattern = strings.ToLower(m.pattern)
	}
	var err error
	if m.pattern != "" && !doublestar.ValidatePattern(m.pattern) {
		m.badPattern = true
		err = &PatternError{Pattern: opts.Pattern}
	}
	return m, err
}

// Options returns the options the matcher was compiled from.
func (m *Matcher) Options() Options { return m.opts }

// Eligible reports whether an entry of kind k may be reported at all.
func (m *Matcher) Eligible(k types.Kind) bool {
	return MatchType(m.opts.Types, k)
}

func (m *Matcher) matchName(name string) bool {
	if m.pattern == "" {
		return true
	}
	if m.badPattern {
		return false
	}
	if !m.opts.CaseSensitive {
		name = strings.ToLower(name)
	}
	return doublestar.MatchUnvalidated(m.pattern, name)
}

// Match is type ∧ name ∧ perm ∧ flags, evaluated left to right. Metadata is
// fetched at most once and only when a perm or flag filter needs it.
func (m *Matcher) Match(e types.Entry) bool {
	if !m.Eligible(e.Kind) {
		return false
	}
	if !m.matchName(e.Name) {
		return false
	}
	if m.opts.Perm.Kind == PermNone && !m.opts.Flags.Any() {
		return true
	}
	md, err := e.Metadata()
	return MatchPerm(m.opts.Perm, md, err) && MatchFlags(m.opts.Flags, md, err)
}
