package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	for _, name := range []string{"initialize", "render", "deploy", "undeploy", "version"} {
		found, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, found.Name())
	}
}

func TestDeployCommand_Flags(t *testing.T) {
	flag := deployCmd.Flags().Lookup("replay")
	require.NotNil(t, flag)
	assert.Equal(t, "r", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)

	assert.NotNil(t, renderCmd.Flags().Lookup("stdout"))
}

func TestVersionCommand_PrintsVersion(t *testing.T) {
	out := new(bytes.Buffer)
	versionCmd.SetOut(out)
	versionCmd.Run(versionCmd, nil)

	assert.Equal(t, "isolet dev\n", out.String())
}
