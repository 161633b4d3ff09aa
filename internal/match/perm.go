package match

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rfind/rfind/internal/types"
)

// PermKind selects how a PermSpec is compared against an entry's mode.
type PermKind int

const (
	PermNone    PermKind = iota // no permission filter
	PermExact                   // mode&0o777 == Value
	PermMask                    // mode&Value != 0
	PermInvalid                 // rejected input; never matches
)

// maxPerm is the largest accepted octal value (special bits included).
const maxPerm = 0o7777

// PermSpec is a parsed --perm value.
type PermSpec struct {
	Kind  PermKind
	Value uint32
}

// PermError reports a permission specifier that is not octal or out of range.
type PermError struct {
	Input  string
	Reason string
}

func (e *PermError) Error() string {
	return fmt.Sprintf("invalid permission %q: %s", e.Input, e.Reason)
}

// ParsePermSpec parses "644" (exact) or "/4000" (mask). The empty string
// yields PermNone. On error the returned spec is PermInvalid so callers that
// choose to continue get a filter that matches nothing.
func ParsePermSpec(s string) (PermSpec, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PermSpec{Kind: PermNone}, nil
	}
	kind := PermExact
	digits := s
	if strings.HasPrefix(s, "/") {
		kind = PermMask
		digits = s[1:]
	}
	if digits == "" {
		return PermSpec{Kind: PermInvalid}, &PermError{Input: s, Reason: "missing octal digits"}
	}
	v, err := strconv.ParseUint(digits, 8, 32)
	if err != nil {
		return PermSpec{Kind: PermInvalid}, &PermError{Input: s, Reason: "not an octal number"}
	}
	if v > maxPerm {
		return PermSpec{Kind: PermInvalid}, &PermError{Input: s, Reason: "exceeds 7777"}
	}
	return PermSpec{Kind: kind, Value: uint32(v)}, nil
}

func (p PermSpec) String() string {
	switch p.Kind {
	case PermExact:
		return fmt.Sprintf("%o", p.Value)
	case PermMask:
		return fmt.Sprintf("/%o", p.Value)
	case PermInvalid:
		return "invalid"
	}
	return ""
}

// MatchPerm evaluates the permission predicate. A metadata error counts as
// no match whenever a filter is present.
func MatchPerm(p PermSpec, md types.Metadata, mdErr error) bool {
	switch p.Kind {
	case PermNone:
		return true
	case PermExact:
		return mdErr == nil && md.Mode&types.ModePerm == p.Value
	case PermMask:
		return mdErr == nil && md.Mode&p.Value != 0
	}
	return false
}

// Flags are the special-mode requirements; each set flag must hold.
type Flags struct {
	SUID       bool
	SGID       bool
	ExecOthers bool
	RootOwned  bool
}

// Any reports whether at least one flag is requested.
func (f Flags) Any() bool {
	return f.SUID || f.SGID || f.ExecOthers || f.RootOwned
}

// MatchFlags evaluates the flag predicate. With no flags requested it is
// always true; otherwise missing metadata or an unknown owner fails it.
func MatchFlags(f Flags, md types.Metadata, mdErr error) bool {
	if !f.Any() {
		return true
	}
	if mdErr != nil {
		return false
	}
	if f.SUID && md.Mode&types.ModeSetuid == 0 {
		return false
	}
	if f.SGID && md.Mode&types.ModeSetgid == 0 {
		return false
	}
	if f.ExecOthers && md.Mode&0o001 == 0 {
		return false
	}
	if f.RootOwned && (!md.HasOwner || md.UID != 0) {
		return false
	}
	return true
}
