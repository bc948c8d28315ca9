package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCommand_HasSubcommands verifies root command structure
func TestRootCommand_HasSubcommands(t *testing.T) {
	cmd := getRootCmd()

	require.NotNil(t, cmd, "Root command should exist")

	found := make(map[string]bool)
	for _, c := range cmd.Commands() {
		found[c.Name()] = true
	}
	assert.True(t, found["process"], "process subcommand should exist")
	assert.True(t, found["split"], "split subcommand should exist")
	assert.True(t, found["query"], "query subcommand should exist")
}

// TestRootCommand_Help verifies help text includes usage
func TestRootCommand_Help(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})
	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()

	assert.Contains(t, helpText, "gnsadm", "Help should mention gnsadm")
	assert.Contains(t, helpText, "GEOnet",
		"Help should mention the data source")
	assert.Contains(t, helpText, "Available Commands",
		"Help should list commands")
}

// TestRootCommand_VersionFlag verifies --version flag
func TestRootCommand_VersionFlag(t *testing.T) {
	cmd := getRootCmd()

	cmd.Version = "test-version"

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--version"})
	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "test-version",
		"Version output should contain version string")
}

// TestProcessCommand_Flags verifies the process command flag set
func TestProcessCommand_Flags(t *testing.T) {
	cmd := getProcessCmd()

	for _, name := range []string{
		"countries", "regions", "output", "top",
		"display-policy", "priority-langs",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name),
			"--%s flag should exist", name)
	}

	assert.Equal(t, "o", cmd.Flags().Lookup("output").Shorthand)
	assert.Equal(t, "t", cmd.Flags().Lookup("top").Shorthand)
}

// TestSplitCommand_Flags verifies the split command flag set
func TestSplitCommand_Flags(t *testing.T) {
	cmd := getSplitCmd()

	for _, name := range []string{"input", "dir", "jobs"} {
		assert.NotNil(t, cmd.Flags().Lookup(name),
			"--%s flag should exist", name)
	}

	assert.Equal(t, "j", cmd.Flags().Lookup("jobs").Shorthand)
}

// TestQueryCommand_Flags verifies the query command flag set
func TestQueryCommand_Flags(t *testing.T) {
	cmd := getQueryCmd()

	for _, name := range []string{
		"input", "country", "level", "name", "stats",
	} {
		assert.NotNil(t, cmd.Flags().Lookup(name),
			"--%s flag should exist", name)
	}

	assert.Equal(t, "c", cmd.Flags().Lookup("country").Shorthand)
	assert.Equal(t, "l", cmd.Flags().Lookup("level").Shorthand)
}
