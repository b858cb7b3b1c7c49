package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/rcgen/rcg/internal/errors"
	"github.com/rcgen/rcg/internal/output"
)

//go:embed assets/*
var assetsFS embed.FS

// EmbeddedProvider serves the template assets compiled into the binary.
type EmbeddedProvider struct{}

// NewEmbeddedProvider creates a provider for the built-in templates.
func NewEmbeddedProvider() *EmbeddedProvider {
	return &EmbeddedProvider{}
}

// Load returns the built-in template for kind.
func (p *EmbeddedProvider) Load(kind Kind) ([]byte, error) {
	t, err := Get(kind)
	if err != nil {
		return nil, err
	}

	content, err := fs.ReadFile(assetsFS, path.Join("assets", t.Asset))
	if err != nil {
		return nil, fmt.Errorf("reading embedded template %s: %w", t.Asset, err)
	}

	output.Debug("loaded template", "kind", kind, "source", "embedded")
	return content, nil
}

// Export writes the built-in template assets into dir so they can be
// customised and used via the templatesDir setting. Existing files are
// left untouched unless force is set.
func Export(fsys afero.Fs, dir string, force bool) ([]string, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, oerrors.NewStorageError("create directory", dir, err)
	}

	written := make([]string, 0, len(templates))
	for _, t := range List() {
		targetPath := filepath.Join(dir, t.Asset)

		if !force {
			exists, err := afero.Exists(fsys, targetPath)
			if err != nil {
				return written, oerrors.NewStorageError("stat", targetPath, err)
			}
			if exists {
				return written, oerrors.NewAlreadyExistsError(
					fmt.Sprintf("template %s already exists; use --force to overwrite", t.Asset),
					targetPath,
				)
			}
		}

		content, err := fs.ReadFile(assetsFS, path.Join("assets", t.Asset))
		if err != nil {
			return written, fmt.Errorf("reading embedded template %s: %w", t.Asset, err)
		}

		if err := afero.WriteFile(fsys, targetPath, content, 0o644); err != nil {
			return written, oerrors.NewStorageError("write file", targetPath, err)
		}

		output.Debug("exported template", "kind", t.Kind, "path", targetPath)
		written = append(written, t.Asset)
	}

	return written, nil
}
