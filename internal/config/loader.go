package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Environment variable prefix for rcg configuration.
const envPrefix = "RCG"

// Environment variables recognised by the loader.
const (
	EnvConfig       = "RCG_CONFIG"
	EnvTemplatesDir = "RCG_TEMPLATES_DIR"
	EnvPlaceholder  = "RCG_PLACEHOLDER"
	EnvComponentExt = "RCG_COMPONENT_EXT"
	EnvStyleExt     = "RCG_STYLE_EXT"
)

// Config keys, as written in the config file.
const (
	KeyTemplatesDir  = "templatesDir"
	KeyPlaceholder   = "placeholder"
	KeyComponentExt  = "componentExt"
	KeyStyleExt      = "styleExt"
	KeyLogTimestamps = "log.timestamps"
)

// envBindings maps config keys to their environment variables.
var envBindings = map[string]string{
	KeyTemplatesDir: EnvTemplatesDir,
	KeyPlaceholder:  EnvPlaceholder,
	KeyComponentExt: EnvComponentExt,
	KeyStyleExt:     EnvStyleExt,
}

// LoadResult is a loaded configuration plus where each value came from.
type LoadResult struct {
	// Config holds file values overridden by environment variables.
	Config *Config

	// File holds the values read from the config file alone.
	File *Config

	// Path is the config file that was read.
	Path string

	// Found reports whether the config file existed.
	Found bool

	// Sources records SourceEnv or SourceConfig for every key that was set.
	Sources map[string]ConfigSource
}

// Loader handles loading and merging configuration from the config file and environment.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a configuration loader reading from the OS filesystem.
func NewLoader() *Loader {
	return NewLoaderWithFs(afero.NewOsFs())
}

// NewLoaderWithFs creates a configuration loader reading from fsys.
func NewLoaderWithFs(fsys afero.Fs) *Loader {
	return &Loader{fs: fsys}
}

// bindEnv layers the RCG_* environment variables over the file values.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}
}

// Load loads configuration from configFile. A missing file is not an error;
// environment values still apply. Environment variables take precedence
// over file values.
func (l *Loader) Load(configFile string) (*LoadResult, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	result := &LoadResult{
		Path:    expandedPath,
		Sources: make(map[string]ConfigSource),
	}

	v := viper.New()
	v.SetFs(l.fs)

	if expandedPath != "" {
		v.SetConfigFile(expandedPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
			}
		} else {
			result.Found = true
		}
	}

	var fileCfg Config
	if err := v.Unmarshal(&fileCfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	result.File = &fileCfg

	bindEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	result.Config = &cfg

	for key, env := range envBindings {
		switch {
		case os.Getenv(env) != "":
			result.Sources[key] = SourceEnv
		case result.Found && v.InConfig(key):
			result.Sources[key] = SourceConfig
		}
	}
	if result.Found && v.InConfig(KeyLogTimestamps) {
		result.Sources[KeyLogTimestamps] = SourceConfig
	}

	return result, nil
}

// ConfigFileExists checks if the config file exists on the loader's filesystem.
func (l *Loader) ConfigFileExists(configFile string) (bool, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}
	return afero.Exists(l.fs, expandedPath)
}
