// Package config provides configuration loading and management.
package config

// Default values for settings not provided by flag, env, or config file.
const (
	DefaultPlaceholder  = "ClassName"
	DefaultComponentExt = ".tsx"
	DefaultStyleExt     = ".scss"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the rcg configuration.
// Loaded from ~/.rcg/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// TemplatesDir is a directory holding custom template assets.
	// Empty means the templates compiled into the binary.
	// Env: RCG_TEMPLATES_DIR
	TemplatesDir string `json:"templatesDir,omitempty" mapstructure:"templatesDir"`

	// Placeholder is the literal token replaced by the component name.
	// Env: RCG_PLACEHOLDER, Default: ClassName
	Placeholder string `json:"placeholder,omitempty" mapstructure:"placeholder"`

	// ComponentExt is the extension of the generated component file.
	// Env: RCG_COMPONENT_EXT, Default: .tsx
	ComponentExt string `json:"componentExt,omitempty" mapstructure:"componentExt"`

	// StyleExt is the extension of the generated stylesheet, written after ".module".
	// Env: RCG_STYLE_EXT, Default: .scss
	StyleExt string `json:"styleExt,omitempty" mapstructure:"styleExt"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" mapstructure:"log"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `rcg config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Placeholder:  DefaultPlaceholder,
		ComponentExt: DefaultComponentExt,
		StyleExt:     DefaultStyleExt,
		Log:          LogConfig{Timestamps: &timestamps},
	}
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Placeholder == "" {
		out.Placeholder = DefaultPlaceholder
	}
	if out.ComponentExt == "" {
		out.ComponentExt = DefaultComponentExt
	}
	if out.StyleExt == "" {
		out.StyleExt = DefaultStyleExt
	}
	return &out
}
