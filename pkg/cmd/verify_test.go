package cmd

import (
	"path/filepath"
	"testing"

	"github.com/pseudomuto/myddl/pkg/format"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestSchemaVerifyCommand_FlagConfiguration(t *testing.T) {
	command := schemaVerify(nil, format.New(format.Defaults))

	require.Equal(t, "verify", command.Name)
	require.Equal(t, "<file>...", command.ArgsUsage)

	version := command.Flags[0].(*cli.StringFlag)
	require.Equal(t, "mysql-version", version.Name)
	require.Equal(t, "8.0", version.Value)

	trackUse := command.Flags[2].(*cli.BoolFlag)
	require.Equal(t, "track-use", trackUse.Name)
	require.False(t, trackUse.Value)
}

func TestSchemaVerifyCommand_RequiresFiles(t *testing.T) {
	_, err := runCommand(t, schemaVerify(nil, format.New(format.Defaults)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "at least one file argument is required")
}

func TestSchemaVerifyCommand_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping Docker tests in short mode")
	}

	output, err := runCommand(t, schemaVerify(nil, format.New(format.Defaults)),
		"--track-use", filepath.Join("testdata", "shop.sql"))
	require.NoError(t, err)
	require.Contains(t, output, "Verified 2 table(s) in 2 database(s) against mysql:8.0")
}
