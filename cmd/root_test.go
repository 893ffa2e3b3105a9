package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/gnames/skillgap/internal/iotesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh root command with args and returns its output.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, error) {
	t.Helper()
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// setupHome points HOME to a temporary directory and returns the path
// of a records file with fixture data.
func setupHome(t *testing.T) string {
	t.Helper()
	home := iotesting.SetupTempHome(t)
	t.Setenv("HOME", home)
	t.Setenv("SKILLGAP_STORE_TYPE", "")
	t.Setenv("SKILLGAP_LOG_DESTINATION", "file")
	return iotesting.WriteTempRecords(t, iotesting.RecordsYAML)
}

// TestGetRootCmd_Exists verifies getRootCmd returns
// a valid command.
func TestGetRootCmd_Exists(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")
	assert.Equal(t, "skillgap", cmd.Use,
		"Command name should be skillgap")
}

// TestGetRootCmd_VersionFormat verifies version
// output format.
func TestGetRootCmd_VersionFormat(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		cmd := getRootCmd()
		cmd.Version = "version: v1.2.3\nbuild:   abc123"

		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{flag})

		err := cmd.Execute()
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "v1.2.3", flag)
		assert.Contains(t, output, "abc123", flag)
		assert.NotContains(t, output, "skillgap version:",
			"Should use custom version template")
	}
}

// TestGetRootCmd_HelpText verifies help text content.
func TestGetRootCmd_HelpText(t *testing.T) {
	out, err := execute(t, nil, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "skillgap")
	assert.Contains(t, out, "hierarchy")
	assert.Contains(t, out, "SKILLGAP_")
	for _, sub := range []string{
		"create", "migrate", "populate", "employee",
		"rollup", "children", "search",
	} {
		assert.Contains(t, out, sub, "Help should list %s", sub)
	}
}

// TestGetRootCmd_Settings verifies bootstrap and error silencing.
func TestGetRootCmd_Settings(t *testing.T) {
	cmd := getRootCmd()

	assert.NotNil(t, cmd.PersistentPreRunE,
		"PersistentPreRunE should be set for bootstrap")
	assert.NotNil(t, cmd.RunE,
		"RunE should be set to handle version flag")
	assert.True(t, cmd.SilenceErrors, "Errors should be silenced")
	assert.True(t, cmd.SilenceUsage, "Usage should be silenced on errors")

	for _, name := range []string{"config", "store", "data", "sqlite",
		"format", "stored-gaps", "jobs"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

// TestGetRootCmd_IndependentInstances verifies each
// call returns independent instance.
func TestGetRootCmd_IndependentInstances(t *testing.T) {
	cmd1 := getRootCmd()
	cmd2 := getRootCmd()

	assert.NotSame(t, cmd1, cmd2,
		"Each getRootCmd call should return new instance")

	cmd1.Version = "version1"
	cmd2.Version = "version2"
	assert.Equal(t, "version1", cmd1.Version)
	assert.Equal(t, "version2", cmd2.Version)
}

// TestGetRootCmd_InvalidCommand verifies error on
// invalid command.
func TestGetRootCmd_InvalidCommand(t *testing.T) {
	out, err := execute(t, nil, "nonexistent-command")

	assert.Error(t, err, "Should error on invalid command")
	assert.True(t,
		strings.Contains(out, "unknown") ||
			strings.Contains(err.Error(), "unknown"),
		"Error should indicate unknown command")
}

func TestIsWriter(t *testing.T) {
	root := getRootCmd()
	tests := map[string]bool{
		"create":   true,
		"migrate":  true,
		"populate": true,
		"employee": false,
		"rollup":   false,
		"search":   false,
	}
	for name, want := range tests {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, want, isWriter(sub), name)
	}
}

func TestGlobalFlagsOptions(t *testing.T) {
	root := getRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--store", "sqlite", "--jobs", "3"}))

	opts := flags.options(root)
	assert.Len(t, opts, 2, "only changed flags become options")
}
