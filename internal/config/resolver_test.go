package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigPath_FlagPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/path/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{
		FlagValue: "/flag/path/config.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, "/flag/path/config.yaml", result.ConfigPath)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/path/config.yaml", result.Shadowed[SourceEnv])
	assert.NotEmpty(t, result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/path/config.yaml")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})
	require.NoError(t, err)

	assert.Equal(t, "/env/path/config.yaml", result.ConfigPath)
	assert.Equal(t, SourceEnv, result.Source)
	assert.NotEmpty(t, result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_Default(t *testing.T) {
	t.Setenv(EnvConfig, "")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})
	require.NoError(t, err)

	assert.Contains(t, result.ConfigPath, ".rcg")
	assert.Contains(t, result.ConfigPath, "config.yaml")
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "flag", string(SourceFlag))
	assert.Equal(t, "env", string(SourceEnv))
	assert.Equal(t, "config", string(SourceConfig))
	assert.Equal(t, "default", string(SourceDefault))
}

func TestResolveAll_FlagOverridesAll(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPlaceholder, "EnvToken")
	t.Setenv(EnvTemplatesDir, "/env/templates")

	result := ResolveAll(ResolveOptions{
		TemplatesDirFlag: "/flag/templates",
		PlaceholderFlag:  "FlagToken",
		File: &Config{
			TemplatesDir: "/config/templates",
			Placeholder:  "ConfigToken",
		},
	})

	assert.Equal(t, "/flag/templates", result.TemplatesDir.Value)
	assert.Equal(t, SourceFlag, result.TemplatesDir.Source)
	assert.Equal(t, "/env/templates", result.TemplatesDir.Shadowed[SourceEnv])
	assert.Equal(t, "/config/templates", result.TemplatesDir.Shadowed[SourceConfig])

	assert.Equal(t, "FlagToken", result.Placeholder.Value)
	assert.Equal(t, SourceFlag, result.Placeholder.Source)
	assert.Equal(t, "EnvToken", result.Placeholder.Shadowed[SourceEnv])
	assert.Equal(t, "ConfigToken", result.Placeholder.Shadowed[SourceConfig])
	assert.Equal(t, DefaultPlaceholder, result.Placeholder.Shadowed[SourceDefault])
}

func TestResolveAll_EnvOverridesConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvComponentExt, ".jsx")

	result := ResolveAll(ResolveOptions{
		File: &Config{ComponentExt: ".ts"},
	})

	assert.Equal(t, ".jsx", result.ComponentExt.Value)
	assert.Equal(t, SourceEnv, result.ComponentExt.Source)
	assert.Equal(t, ".ts", result.ComponentExt.Shadowed[SourceConfig])
	assert.NotContains(t, result.ComponentExt.Shadowed, SourceFlag)
}

func TestResolveAll_ConfigOverridesDefault(t *testing.T) {
	clearEnv(t)

	result := ResolveAll(ResolveOptions{
		File: &Config{StyleExt: ".css", Log: LogConfig{Timestamps: boolPtr(false)}},
	})

	assert.Equal(t, ".css", result.StyleExt.Value)
	assert.Equal(t, SourceConfig, result.StyleExt.Source)
	assert.Equal(t, DefaultStyleExt, result.StyleExt.Shadowed[SourceDefault])
	assert.False(t, result.Timestamps)
}

func TestResolveAll_DefaultsUsedWhenNothingSet(t *testing.T) {
	clearEnv(t)

	result := ResolveAll(ResolveOptions{})

	assert.Equal(t, "", result.TemplatesDir.Value)
	assert.Equal(t, SourceDefault, result.TemplatesDir.Source)
	assert.Equal(t, DefaultPlaceholder, result.Placeholder.Value)
	assert.Equal(t, SourceDefault, result.Placeholder.Source)
	assert.Equal(t, DefaultComponentExt, result.ComponentExt.Value)
	assert.Equal(t, DefaultStyleExt, result.StyleExt.Value)
	assert.True(t, result.Timestamps)
	assert.Empty(t, result.Placeholder.Shadowed)
}

func TestResolveAll_TimestampsFlagWins(t *testing.T) {
	clearEnv(t)

	result := ResolveAll(ResolveOptions{
		TimestampsFlag: boolPtr(true),
		File:           &Config{Log: LogConfig{Timestamps: boolPtr(false)}},
	})

	assert.True(t, result.Timestamps)
}

func TestResolvedConfig_Config(t *testing.T) {
	clearEnv(t)

	cfg := ResolveAll(ResolveOptions{PlaceholderFlag: "Token"}).Config()

	assert.Equal(t, "Token", cfg.Placeholder)
	assert.Equal(t, DefaultComponentExt, cfg.ComponentExt)
	assert.Equal(t, DefaultStyleExt, cfg.StyleExt)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
}

func TestResolvedConfig_ValuesOrder(t *testing.T) {
	clearEnv(t)

	values := ResolveAll(ResolveOptions{}).Values()
	require.Len(t, values, 4)
	assert.Equal(t, KeyTemplatesDir, values[0].Key)
	assert.Equal(t, KeyPlaceholder, values[1].Key)
	assert.Equal(t, KeyComponentExt, values[2].Key)
	assert.Equal(t, KeyStyleExt, values[3].Key)
}

func boolPtr(b bool) *bool {
	return &b
}
