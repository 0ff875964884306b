package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "printdex")
}

func TestBuildCommandRegistered(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"build"})
	require.NoError(t, err)
	assert.Equal(t, "build", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("output"))
}

func TestBuildCommandRejectsMissingConfig(t *testing.T) {
	configFile = "/nonexistent/sources.yaml"
	t.Cleanup(func() { configFile = "" })

	rootCmd.SetArgs([]string{"build"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.Execute()
	require.Error(t, err)
}
