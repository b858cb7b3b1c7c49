package templates

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/rcgen/rcg/internal/output"
)

// DirProvider reads template assets from a directory on every call.
// Asset file names match the built-in ones (see List).
type DirProvider struct {
	fs  afero.Fs
	dir string
}

// NewDirProvider creates a provider rooted at dir.
func NewDirProvider(fsys afero.Fs, dir string) *DirProvider {
	return &DirProvider{fs: fsys, dir: dir}
}

// Dir returns the directory templates are read from.
func (p *DirProvider) Dir() string {
	return p.dir
}

// Load reads the template for kind from the provider directory.
func (p *DirProvider) Load(kind Kind) ([]byte, error) {
	t, err := Get(kind)
	if err != nil {
		return nil, err
	}

	assetPath := filepath.Join(p.dir, t.Asset)
	content, err := afero.ReadFile(p.fs, assetPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", assetPath, err)
	}

	output.Debug("loaded template", "kind", kind, "source", assetPath)
	return content, nil
}

// NewProvider returns a DirProvider when dir is set and the embedded
// provider otherwise.
func NewProvider(fsys afero.Fs, dir string) Provider {
	if dir == "" {
		return NewEmbeddedProvider()
	}
	return NewDirProvider(fsys, dir)
}
