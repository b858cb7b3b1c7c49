package templates

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/rcgen/rcg/internal/errors"
)

func TestEmbeddedProvider_Load(t *testing.T) {
	tests := []struct {
		name            string
		kind            Kind
		wantPlaceholder bool
		wantContains    []string
	}{
		{
			name:            "stylesheet",
			kind:            KindStylesheet,
			wantPlaceholder: false,
			wantContains:    []string{".container"},
		},
		{
			name:            "function component",
			kind:            KindFunctionComponent,
			wantPlaceholder: true,
			wantContains:    []string{"React.FC", "./ClassName.module.scss", "export default ClassName"},
		},
		{
			name:            "function component with interface",
			kind:            KindFunctionComponentWithInterface,
			wantPlaceholder: true,
			wantContains:    []string{"interface ClassNameProps", "React.FC<ClassNameProps>"},
		},
	}

	p := NewEmbeddedProvider()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := p.Load(tt.kind)
			require.NoError(t, err)
			require.NotEmpty(t, content)

			assert.Equal(t, tt.wantPlaceholder, strings.Contains(string(content), DefaultPlaceholder))
			for _, want := range tt.wantContains {
				assert.Contains(t, string(content), want)
			}
		})
	}
}

func TestEmbeddedProvider_UnknownKind(t *testing.T) {
	_, err := NewEmbeddedProvider().Load(Kind("class"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	assert.Contains(t, err.Error(), "unknown template")
}

func TestExport(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/home/me/.rcg/templates"

	written, err := Export(fsys, dir, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"stylesheet.scss", "ts_fc.txt", "ts_fc_interface.txt"}, written)

	embedded := NewEmbeddedProvider()
	for _, tmpl := range List() {
		got, err := afero.ReadFile(fsys, filepath.Join(dir, tmpl.Asset))
		require.NoError(t, err)

		want, err := embedded.Load(tmpl.Kind)
		require.NoError(t, err)
		assert.Equal(t, want, got, "exported %s differs from embedded asset", tmpl.Asset)
	}
}

func TestExport_ExistingWithoutForce(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/tpl"
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, "stylesheet.scss"), []byte("custom"), 0o644))

	_, err := Export(fsys, dir, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrAlreadyExists))

	content, err := afero.ReadFile(fsys, filepath.Join(dir, "stylesheet.scss"))
	require.NoError(t, err)
	assert.Equal(t, "custom", string(content))
}

func TestExport_Force(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dir := "/tpl"
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, "stylesheet.scss"), []byte("custom"), 0o644))

	written, err := Export(fsys, dir, true)
	require.NoError(t, err)
	assert.Len(t, written, 3)

	content, err := afero.ReadFile(fsys, filepath.Join(dir, "stylesheet.scss"))
	require.NoError(t, err)
	assert.NotEqual(t, "custom", string(content))
}

func TestExport_ReadOnlyFs(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, err := Export(fsys, "/tpl", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrStorage))
}
