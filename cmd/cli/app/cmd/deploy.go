package cmd

import (
	"isolet/cmd/cli/app"

	"github.com/spf13/cobra"
)

var replay *bool

func init() {
	replay = deployCmd.Flags().BoolP("replay", "r", false, "Apply the stored renderings instead of generating manifests")
	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:               "deploy [challenge...]",
	Short:             "Deploys challenges",
	Long:              `Deploys the selected challenges if arguments are supplied, otherwise all challenges. Non-http challenges get a gateway entrypoint and service port; the gateway is patched and restarted once at the end. Custom challenges are always applied from their stored rendering.`,
	ValidArgsFunction: ChallengeArgsCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, cleanup, err := app.InjectDeployCommandHandler()
		if err != nil {
			return err
		}
		defer cleanup()

		return handler.Handle(cmd.Context(), args, *replay)
	},
}
