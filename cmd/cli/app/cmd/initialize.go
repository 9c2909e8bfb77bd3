package cmd

import (
	"isolet/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initializeCmd)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize <public-domain>",
	Short: "Generates a new configuration file with default values",
	Long:  `A new configuration file is written to ~/.isolet-config.yaml (or ISOLET_CONFIG). It holds the default namespaces, gateway object names and resource limits. The file is not created if it already exists.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectInitializeCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle(args[0])
	},
}
