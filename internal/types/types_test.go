package types

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"file": KindFile, "f": KindFile, "DIR": KindDir, "d": KindDir} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseKind("symlink")
	assert.Error(t, err)
}

func TestKindSet_OtherCountsAsFile(t *testing.T) {
	s := NewKindSet(KindFile)
	assert.True(t, s.Has(KindOther))
	assert.False(t, s.Has(KindDir))
	assert.Equal(t, "dir,file", AllKinds().String())
}

func TestPosixMode(t *testing.T) {
	assert.Equal(t, uint32(0o100644), PosixMode(0o644))
	assert.Equal(t, uint32(0o104755), PosixMode(fs.ModeSetuid|0o755))
	assert.Equal(t, uint32(0o042755), PosixMode(fs.ModeDir|fs.ModeSetgid|0o755))
	assert.Equal(t, uint32(0o041777), PosixMode(fs.ModeDir|fs.ModeSticky|0o777))
}

func TestEntryMetadata_NilStat(t *testing.T) {
	_, err := Entry{Path: "x"}.Metadata()
	assert.ErrorIs(t, err, ErrNoMetadata)
}

func TestMetadataFromInfo_RealFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))
	require.NoError(t, os.Chmod(p, 0o640))
	info, err := os.Lstat(p)
	require.NoError(t, err)
	md := MetadataFromInfo(info)
	assert.Equal(t, uint32(0o640), md.Mode&ModePerm)
	assert.Equal(t, uint32(0o100000), md.Mode&0o170000)
}
