package cmd

import (
	"context"
	"os"

	"isolet/internal/cli/output"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "isolet",
	Short: "Exposes CTF challenges through the shared Traefik gateway",
	Long: `isolet deploys challenge workloads into the cluster and wires non-http
challenges into the shared Traefik gateway (entrypoints, service ports, routes).

Configuration is read from ~/.isolet-config.yaml or the file named by
ISOLET_CONFIG. Run 'isolet initialize' to write one with default values.
CHALL_TYPE and PUBLIC_URL override the run class and the public domain.

Common workflows:
  isolet render               Render and store the manifests of every challenge
  isolet deploy pwn1          Expose one challenge and patch the gateway
  isolet deploy --replay      Apply the stored renderings
  isolet undeploy pwn1        Remove a challenge and its gateway entries`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		output.PrintError(err.Error())
		os.Exit(1)
	}
}
