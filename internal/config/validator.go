package config

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	rcgerrors "github.com/rcgen/rcg/internal/errors"
)

//go:embed schema.cue
var schemaSource []byte

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Is lets errors.Is match ErrValidation.
func (e ValidationErrors) Is(target error) bool {
	return target == rcgerrors.ErrValidation
}

// Validator validates configuration against the embedded CUE schema.
type Validator struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewValidator creates a new configuration validator.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	root := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if root.Err() != nil {
		return nil, fmt.Errorf("compiling schema: %w", root.Err())
	}

	schema := root.LookupPath(cue.ParsePath("#Config"))
	if !schema.Exists() {
		return nil, fmt.Errorf("schema does not define #Config")
	}

	return &Validator{
		ctx:    ctx,
		schema: schema,
	}, nil
}

// Validate validates the given configuration.
func (v *Validator) Validate(cfg *Config) error {
	return v.check(v.ctx.Encode(cfg))
}

// ValidateBytes validates raw YAML config content. Unlike Validate it
// also rejects keys the schema does not know.
func (v *Validator) ValidateBytes(data []byte) error {
	if strings.TrimSpace(string(data)) == "" {
		return nil
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return ValidationErrors{{Field: "(file)", Message: err.Error()}}
	}

	value := v.ctx.CompileBytes(jsonData, cue.Filename("config.yaml"))
	if value.Err() != nil {
		return ValidationErrors{{Field: "(file)", Message: value.Err().Error()}}
	}
	return v.check(value)
}

// ValidateFile validates the configuration file at path on fsys.
func (v *Validator) ValidateFile(fsys afero.Fs, path string) error {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return rcgerrors.NewStorageError("read", path, err)
	}
	return v.ValidateBytes(data)
}

func (v *Validator) check(value cue.Value) error {
	if value.Err() != nil {
		return ValidationErrors{{Field: "(config)", Message: value.Err().Error()}}
	}

	unified := v.schema.Unify(value)
	err := unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	for _, e := range cueerrors.Errors(err) {
		field := strings.Join(e.Path(), ".")
		if field == "" {
			field = "(config)"
		}
		format, args := e.Msg()
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}
	return errs
}
