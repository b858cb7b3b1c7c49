package cmd

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcgen/rcg/internal/config"
	oerrors "github.com/rcgen/rcg/internal/errors"
	"github.com/rcgen/rcg/internal/testutil"
)

func TestNewConfigInitCmd(t *testing.T) {
	cmd := NewConfigInitCmd()

	assert.Equal(t, "init", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("force"))
}

func TestConfigInit_CreatesFile(t *testing.T) {
	isolateEnv(t)
	fsys := afero.NewMemMapFs()

	r := execute(t, fsys, "", "config", "init")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, testConfigPath)

	content := testutil.ReadFile(t, fsys, testConfigPath)
	assert.Contains(t, content, "# rcg configuration")
	assert.Contains(t, content, "placeholder: ClassName")

	info, err := fsys.Stat(testConfigPath)
	require.NoError(t, err)
	assert.Equal(t, "-rw-------", info.Mode().Perm().String())
}

func TestConfigInit_ExistingConfig(t *testing.T) {
	isolateEnv(t)
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, testConfigPath, []byte("placeholder: Keep\n"), 0o644))

	r := execute(t, fsys, "", "config", "init")
	require.Error(t, r.err)
	assert.Equal(t, oerrors.ExitValidationError, r.exitCode())
	assert.Contains(t, r.stderr, "--force")
	assert.Equal(t, "placeholder: Keep\n", testutil.ReadFile(t, fsys, testConfigPath))

	forced := execute(t, fsys, "", "config", "init", "--force")
	require.NoError(t, forced.err)
	assert.Contains(t, testutil.ReadFile(t, fsys, testConfigPath), "placeholder: ClassName")
}

func TestConfigVet(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		isolateEnv(t)

		r := execute(t, afero.NewMemMapFs(), "", "config", "vet")
		require.Error(t, r.err)
		assert.Equal(t, oerrors.ExitNotFound, r.exitCode())
		assert.Contains(t, r.stderr, "rcg config init")
	})

	t.Run("initialized config is valid", func(t *testing.T) {
		isolateEnv(t)
		fsys := afero.NewMemMapFs()
		require.NoError(t, execute(t, fsys, "", "config", "init").err)

		r := execute(t, fsys, "", "config", "vet")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "Configuration is valid")
	})

	t.Run("schema violation", func(t *testing.T) {
		isolateEnv(t)
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, testConfigPath, []byte("componentExt: tsx\n"), 0o644))

		r := execute(t, fsys, "", "config", "vet")
		require.Error(t, r.err)
		assert.Equal(t, oerrors.ExitValidationError, r.exitCode())
		assert.Contains(t, r.stderr, "componentExt")
	})

	t.Run("invalid environment override", func(t *testing.T) {
		isolateEnv(t)
		t.Setenv(config.EnvStyleExt, "scss")
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, testConfigPath, []byte("placeholder: ClassName\n"), 0o644))

		r := execute(t, fsys, "", "config", "vet")
		require.Error(t, r.err)
		assert.Equal(t, oerrors.ExitValidationError, r.exitCode())
		assert.Contains(t, r.stderr, "effective configuration")
	})
}

func TestConfigShow(t *testing.T) {
	isolateEnv(t)

	t.Run("table shows sources", func(t *testing.T) {
		r := execute(t, afero.NewMemMapFs(), "", "--placeholder", "Token", "config", "show")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "Token")
		assert.Contains(t, r.stdout, "flag")
		assert.Contains(t, r.stdout, "default")
	})

	t.Run("yaml", func(t *testing.T) {
		r := execute(t, afero.NewMemMapFs(), "", "config", "show", "-o", "yaml")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "placeholder: ClassName")
		assert.Contains(t, r.stdout, "timestamps: true")
	})

	t.Run("json", func(t *testing.T) {
		r := execute(t, afero.NewMemMapFs(), "", "config", "show", "-o", "json")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, `"componentExt": ".tsx"`)
	})
}

func TestConfigDiff(t *testing.T) {
	isolateEnv(t)

	t.Run("defaults", func(t *testing.T) {
		r := execute(t, afero.NewMemMapFs(), "", "config", "diff")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "matches the defaults")
	})

	t.Run("changed placeholder", func(t *testing.T) {
		r := execute(t, afero.NewMemMapFs(), "", "--placeholder", "Widget", "config", "diff")
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "placeholder")
		assert.Contains(t, r.stdout, "Widget")
	})
}
