package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for rcg.
type Paths struct {
	// ConfigFile is the path to the config file (~/.rcg/config.yaml).
	ConfigFile string

	// TemplatesDir is the default export target for custom templates (~/.rcg/templates).
	TemplatesDir string

	// HomeDir is the rcg home directory (~/.rcg).
	HomeDir string
}

// DefaultPaths returns the default paths for rcg.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	rcgHome := filepath.Join(homeDir, ".rcg")

	return &Paths{
		ConfigFile:   filepath.Join(rcgHome, "config.yaml"),
		TemplatesDir: filepath.Join(rcgHome, "templates"),
		HomeDir:      rcgHome,
	}, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Only "~/..." is expanded; "~user" forms are left alone.
	if path[1] != '/' && path[1] != filepath.Separator {
		return path, nil
	}

	return filepath.Join(homeDir, path[2:]), nil
}
