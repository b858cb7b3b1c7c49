package templates

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirProvider_Load(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/custom"
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, "ts_fc.txt"), []byte("export const ClassName = 1;\n"), 0o644))

	p := NewDirProvider(fsys, dir)
	assert.Equal(t, dir, p.Dir())

	content, err := p.Load(KindFunctionComponent)
	require.NoError(t, err)
	assert.Equal(t, "export const ClassName = 1;\n", string(content))
}

func TestDirProvider_ReadsFreshOnEveryCall(t *testing.T) {
	fsys := afero.NewMemMapFs()
	assetPath := filepath.Join("/custom", "stylesheet.scss")
	require.NoError(t, afero.WriteFile(fsys, assetPath, []byte(".a {}"), 0o644))

	p := NewDirProvider(fsys, "/custom")

	first, err := p.Load(KindStylesheet)
	require.NoError(t, err)
	assert.Equal(t, ".a {}", string(first))

	require.NoError(t, afero.WriteFile(fsys, assetPath, []byte(".b {}"), 0o644))

	second, err := p.Load(KindStylesheet)
	require.NoError(t, err)
	assert.Equal(t, ".b {}", string(second))
}

func TestDirProvider_MissingAsset(t *testing.T) {
	p := NewDirProvider(afero.NewMemMapFs(), "/empty")

	_, err := p.Load(KindFunctionComponentWithInterface)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "ts_fc_interface.txt")
}

func TestNewProvider(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, embedded := NewProvider(fsys, "").(*EmbeddedProvider)
	assert.True(t, embedded)

	p, ok := NewProvider(fsys, "/custom").(*DirProvider)
	require.True(t, ok)
	assert.Equal(t, "/custom", p.Dir())
}
