// Package scaffold creates component directories from templates.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/rcgen/rcg/internal/errors"
	"github.com/rcgen/rcg/internal/output"
	"github.com/rcgen/rcg/internal/templates"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// Options controls file naming and substitution.
type Options struct {
	// Placeholder is the literal token replaced with the component name.
	Placeholder string
	// ComponentExt is the component file extension, including the dot.
	ComponentExt string
	// StyleExt is the stylesheet extension, written after ".module".
	StyleExt string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Placeholder:  templates.DefaultPlaceholder,
		ComponentExt: ".tsx",
		StyleExt:     ".scss",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Placeholder == "" {
		o.Placeholder = d.Placeholder
	}
	if o.ComponentExt == "" {
		o.ComponentExt = d.ComponentExt
	}
	if o.StyleExt == "" {
		o.StyleExt = d.StyleExt
	}
	return o
}

// Result describes a created component.
type Result struct {
	// Name is the canonical component name.
	Name string
	// Dir is the created component directory.
	Dir string
	// Files lists the created files in creation order.
	Files []string
	// Variant is the component variant that was stamped.
	Variant Variant
}

// Scaffolder writes component directories through an injected filesystem
// and template provider.
type Scaffolder struct {
	fs       afero.Fs
	provider templates.Provider
	opts     Options
}

// New creates a Scaffolder. Empty option fields fall back to DefaultOptions.
func New(fsys afero.Fs, provider templates.Provider, opts Options) *Scaffolder {
	return &Scaffolder{
		fs:       fsys,
		provider: provider,
		opts:     opts.withDefaults(),
	}
}

// Options returns the effective options.
func (s *Scaffolder) Options() Options {
	return s.opts
}

// Scaffold creates targetDir and writes the stylesheet and the component
// file for variant into it, both named after name.
//
// If targetDir already exists nothing is written and an AlreadyExists
// error is returned. The existence check and the directory creation are
// separate steps: a directory created concurrently in between surfaces as
// AlreadyExists from the create step. Files written before a storage
// failure are left in place.
func (s *Scaffolder) Scaffold(name, targetDir string, variant Variant) (*Result, error) {
	if name == "" {
		return nil, oerrors.NewInvalidInputError("name must not be empty", "")
	}

	kind, ok := variant.Template()
	if !ok {
		return nil, oerrors.NewInvalidInputError(fmt.Sprintf("unknown component variant %d", int(variant)), "")
	}

	log := output.ComponentLogger("scaffold")

	exists, err := afero.Exists(s.fs, targetDir)
	if err != nil {
		return nil, oerrors.NewStorageError("stat", targetDir, err)
	}
	if exists {
		return nil, alreadyExists(name, targetDir)
	}

	if err := s.fs.Mkdir(targetDir, dirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, alreadyExists(name, targetDir)
		}
		return nil, oerrors.NewStorageError("create directory", targetDir, err)
	}
	log.Debug("created directory", "path", targetDir)

	result := &Result{Name: name, Dir: targetDir, Variant: variant}

	style, err := s.provider.Load(templates.KindStylesheet)
	if err != nil {
		return nil, oerrors.NewStorageError("read template", templates.KindStylesheet.String(), err)
	}
	stylePath := filepath.Join(targetDir, name+".module"+s.opts.StyleExt)
	if err := s.write(stylePath, style); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, stylePath)

	component, err := s.provider.Load(kind)
	if err != nil {
		return nil, oerrors.NewStorageError("read template", kind.String(), err)
	}
	component = bytes.ReplaceAll(component, []byte(s.opts.Placeholder), []byte(name))
	componentPath := filepath.Join(targetDir, name+s.opts.ComponentExt)
	if err := s.write(componentPath, component); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, componentPath)

	return result, nil
}

func (s *Scaffolder) write(path string, content []byte) error {
	if err := afero.WriteFile(s.fs, path, content, filePerm); err != nil {
		return oerrors.NewStorageError("write", path, err)
	}
	output.Debug("wrote file", "path", path, "bytes", len(content))
	return nil
}

func alreadyExists(name, dir string) error {
	return oerrors.NewAlreadyExistsError(
		fmt.Sprintf("%s already exists, please choose another name.", name),
		dir,
	)
}
