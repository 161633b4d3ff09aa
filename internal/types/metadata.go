package types

import "io/fs"

// POSIX st_mode bits.
const (
	ModeSetuid = 0o4000
	ModeSetgid = 0o2000
	ModeSticky = 0o1000
	ModePerm   = 0o777

	modeTypeDir     = 0o040000
	modeTypeRegular = 0o100000
	modeTypeSymlink = 0o120000
	modeTypeSocket  = 0o140000
	modeTypeFifo    = 0o010000
	modeTypeChar    = 0o020000
	modeTypeBlock   = 0o060000
)

// KindOf classifies an fs.FileMode type without following symlinks.
func KindOf(m fs.FileMode) Kind {
	switch {
	case m.IsDir():
		return KindDir
	case m.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// MetadataFromInfo converts a FileInfo into Metadata. When the platform stat
// structure is available the kernel's mode and owner are used verbatim;
// otherwise the mode is rebuilt from fs.FileMode and the owner is unknown.
func MetadataFromInfo(info fs.FileInfo) Metadata {
	if md, ok := sysMetadata(info); ok {
		return md
	}
	return Metadata{Mode: PosixMode(info.Mode())}
}

// PosixMode translates Go's portable FileMode into st_mode bits.
func PosixMode(m fs.FileMode) uint32 {
	mode := uint32(m.Perm())
	if m&fs.ModeSetuid != 0 {
		mode |= ModeSetuid
	}
	if m&fs.ModeSetgid != 0 {
		mode |= ModeSetgid
	}
	if m&fs.ModeSticky != 0 {
		mode |= ModeSticky
	}
	switch {
	case m.IsDir():
		mode |= modeTypeDir
	case m.IsRegular():
		mode |= modeTypeRegular
	case m&fs.ModeSymlink != 0:
		mode |= modeTypeSymlink
	case m&fs.ModeSocket != 0:
		mode |= modeTypeSocket
	case m&fs.ModeNamedPipe != 0:
		mode |= modeTypeFifo
	case m&fs.ModeCharDevice != 0:
		mode |= modeTypeChar
	case m&fs.ModeDevice != 0:
		mode |= modeTypeBlock
	}
	return mode
}
