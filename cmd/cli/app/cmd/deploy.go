package cmd

import (
	"helmdeploy/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Assembles and runs the helm upgrade",
	Long: `Assembles the helm upgrade command from the environment and runs it.
With --dry-run the command is printed with secret and config values redacted
and helm is not invoked.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectDeployCommandHandler(cmd.Flags())
		if err != nil {
			return err
		}

		return handler.Handle(cmd.OutOrStdout())
	},
}
