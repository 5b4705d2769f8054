package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Subcommands(t *testing.T) {
	want := map[string]bool{
		"events":   false,
		"life":     false,
		"roast":    false,
		"mappings": false,
		"add":      false,
		"edit":     false,
		"remove":   false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		assert.True(t, found, "subcommand %q not registered", name)
	}
}

func TestEventWriteCommands_Flags(t *testing.T) {
	for _, cmd := range []*cobra.Command{addCmd, editCmd} {
		for _, flag := range []string{"start", "end"} {
			f := cmd.Flags().Lookup(flag)
			require.NotNil(t, f, "%s: flag --%s missing", cmd.Name(), flag)
			assert.Contains(t, f.Annotations, cobra.BashCompOneRequiredFlag,
				"%s: flag --%s should be required", cmd.Name(), flag)
		}
	}
	require.NotNil(t, removeCmd.Args, "remove should constrain its args")
}
