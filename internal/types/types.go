package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind is the coarse classification of a directory entry.
type Kind int

const (
	KindFile Kind = iota
	KindDir
	KindOther // symlinks, sockets, devices, fifos
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	default:
		return "other"
	}
}

// ParseKind accepts the names used on the command line and in config files.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "file", "f":
		return KindFile, nil
	case "dir", "d", "directory":
		return KindDir, nil
	}
	return KindOther, fmt.Errorf("invalid type %q (want file or dir)", s)
}

// KindSet is the set of entry kinds eligible for reporting. Only KindFile and
// KindDir are meaningful members; KindOther entries are reported as files.
type KindSet map[Kind]bool

// AllKinds returns a set containing both files and directories.
func AllKinds() KindSet {
	return KindSet{KindFile: true, KindDir: true}
}

// NewKindSet builds a set from the given kinds.
func NewKindSet(kinds ...Kind) KindSet {
	s := KindSet{}
	for _, k := range kinds {
		s.Add(k)
	}
	return s
}

func (s KindSet) Add(k Kind) {
	if k == KindOther {
		k = KindFile
	}
	s[k] = true
}

// Has reports whether entries of kind k are eligible.
func (s KindSet) Has(k Kind) bool {
	if k == KindOther {
		k = KindFile
	}
	return s[k]
}

func (s KindSet) String() string {
	var names []string
	for k, ok := range s {
		if ok {
			names = append(names, k.String())
		}
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

// Metadata is the subset of stat information the predicates consume.
// Mode holds POSIX st_mode bits, including file type and setuid/setgid/sticky.
type Metadata struct {
	Mode     uint32
	UID      uint32
	HasOwner bool
}

// Entry is a single item from a directory listing. Stat is called lazily and
// may fail independently of the listing that produced the entry.
type Entry struct {
	Path string
	Name string
	Kind Kind
	Stat func() (Metadata, error)
}

// ErrNoMetadata is returned by Entry.Metadata when the entry has no Stat func.
var ErrNoMetadata = errors.New("metadata unavailable")

// Metadata fetches the entry's metadata.
func (e Entry) Metadata() (Metadata, error) {
	if e.Stat == nil {
		return Metadata{}, ErrNoMetadata
	}
	return e.Stat()
}
