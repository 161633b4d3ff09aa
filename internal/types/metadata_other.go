//go:build !unix

package types

import "io/fs"

func sysMetadata(fs.FileInfo) (Metadata, bool) { return Metadata{}, false }
