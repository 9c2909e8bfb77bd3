package cmd

import (
	"isolet/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(undeployCmd)
}

var undeployCmd = &cobra.Command{
	Use:               "undeploy [challenge...]",
	Short:             "Removes challenges",
	Long:              `Deletes the Deployment, Service and route of the selected challenges if arguments are supplied, otherwise of all challenges, and removes their gateway entries`,
	ValidArgsFunction: ChallengeArgsCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, cleanup, err := app.InjectUndeployCommandHandler()
		if err != nil {
			return err
		}
		defer cleanup()

		return handler.Handle(cmd.Context(), args)
	},
}
