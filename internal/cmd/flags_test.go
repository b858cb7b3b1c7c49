package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/rcgen/rcg/internal/errors"
	"github.com/rcgen/rcg/internal/output"
)

func TestOutputFlags(t *testing.T) {
	var f OutputFlags
	cmd := &cobra.Command{Use: "test"}
	f.AddTo(cmd)

	flag := cmd.Flags().Lookup("output")
	require.NotNil(t, flag)
	assert.Equal(t, "o", flag.Shorthand)
	assert.Equal(t, "table", flag.DefValue)

	require.NoError(t, cmd.Flags().Set("output", "YAML"))
	format, err := f.Parse()
	require.NoError(t, err)
	assert.Equal(t, output.FormatYAML, format)

	require.NoError(t, cmd.Flags().Set("output", "xml"))
	_, err = f.Parse()
	require.ErrorIs(t, err, oerrors.ErrInvalidInput)
}

func TestForceFlags(t *testing.T) {
	var f ForceFlags
	cmd := &cobra.Command{Use: "test"}
	f.AddTo(cmd, "Overwrite")

	flag := cmd.Flags().Lookup("force")
	require.NotNil(t, flag)
	assert.Equal(t, "f", flag.Shorthand)
	assert.False(t, f.Force)

	require.NoError(t, cmd.Flags().Set("force", "true"))
	assert.True(t, f.Force)
}
