package cmd

import (
	"isolet/cmd/cli/app"

	"github.com/spf13/cobra"
)

var renderToStdout *bool

func init() {
	renderToStdout = renderCmd.Flags().Bool("stdout", false, "Print the renderings instead of storing them")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:               "render [challenge...]",
	Short:             "Renders challenge manifests",
	Long:              `Renders the manifests of the selected challenges if arguments are supplied, otherwise of all challenges, and stores each rendering in the store namespace for later replay. With --stdout the renderings are printed and no cluster is contacted`,
	ValidArgsFunction: ChallengeArgsCompletion,
	RunE: func(cmd *cobra.Command, args []string) error {
		if *renderToStdout {
			handler, cleanup, err := app.InjectPrintRenderCommandHandler()
			if err != nil {
				return err
			}
			defer cleanup()

			return handler.Handle(cmd.Context(), args)
		}

		handler, cleanup, err := app.InjectRenderCommandHandler()
		if err != nil {
			return err
		}
		defer cleanup()

		return handler.Handle(cmd.Context(), args)
	},
}
