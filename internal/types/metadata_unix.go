//go:build unix

package types

import (
	"io/fs"
	"syscall"
)

func sysMetadata(info fs.FileInfo) (Metadata, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok || st == nil {
		return Metadata{}, false
	}
	return Metadata{Mode: uint32(st.Mode), UID: st.Uid, HasOwner: true}, true
}
