package engine

import (
	"io/fs"

	"github.com/spf13/afero"
)

// FS is the directory-listing primitive the walker needs. Entry kind comes
// from fs.DirEntry.Type and metadata from fs.DirEntry.Info, which may fail
// independently of the listing.
type FS interface {
	ReadDir(path string) ([]fs.DirEntry, error)
}

type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS adapts an afero filesystem to FS.
func NewAferoFS(fsys afero.Fs) FS {
	return aferoFS{fs: fsys}
}

// OSFS returns an FS over the host filesystem.
func OSFS() FS {
	return NewAferoFS(afero.NewOsFs())
}

// ReadDir lists path. Partial results are returned together with an error
// when some entries could not be read.
func (a aferoFS) ReadDir(path string) ([]fs.DirEntry, error) {
	f, err := a.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	infos, err := f.Readdir(-1)
	out := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		out = append(out, fs.FileInfoToDirEntry(info))
	}
	return out, err
}
