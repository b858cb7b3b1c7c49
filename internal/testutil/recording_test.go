package testutil

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingFs_RecordsCalls(t *testing.T) {
	fsys := NewRecordingFs(nil)

	require.NoError(t, fsys.Mkdir("/a", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/a/b.txt", []byte("x"), 0o644))
	exists, err := afero.Exists(fsys, "/a/b.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.Equal(t, 1, fsys.Count("Mkdir"))
	assert.Equal(t, 1, fsys.Count("OpenFile"))
	assert.Equal(t, 1, fsys.Count("Stat"))
	assert.Equal(t, 3, fsys.CallCount())
	assert.Equal(t, Call{Op: "Mkdir", Path: "/a"}, fsys.Calls()[0])

	fsys.Reset()
	assert.Zero(t, fsys.CallCount())
}

func TestRecordingFs_FailOn(t *testing.T) {
	boom := errors.New("disk full")
	fsys := NewRecordingFs(afero.NewMemMapFs())
	fsys.FailOn["OpenFile"] = boom

	err := afero.WriteFile(fsys, "/x.txt", []byte("x"), 0o644)
	require.ErrorIs(t, err, boom)

	exists, err := afero.Exists(fsys.Fs, "/x.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListFiles(t *testing.T) {
	fsys := afero.NewMemMapFs()
	WriteFile(t, fsys, "/root/Comp", "Comp.tsx", "a")
	WriteFile(t, fsys, "/root/Comp", "Comp.module.scss", "b")

	files := ListFiles(t, fsys, "/root")
	assert.Equal(t, []string{"Comp/Comp.module.scss", "Comp/Comp.tsx"}, files)
	assert.Equal(t, "a", ReadFile(t, fsys, "/root/Comp/Comp.tsx"))
}
