package cmd

import (
	"isolet/cmd/cli/app"

	"github.com/spf13/cobra"
)

// ChallengeArgsCompletion completes challenge names from the challenges file.
func ChallengeArgsCompletion(
	cmd *cobra.Command,
	args []string,
	toComplete string,
) ([]cobra.Completion, cobra.ShellCompDirective) {
	provider, err := app.InjectChallengeMetadataProvider()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	challenges, err := provider.LoadChallenges(cmd.Context(), nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var names []cobra.Completion
	for _, challenge := range challenges {
		names = append(names, challenge.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
