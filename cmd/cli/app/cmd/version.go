package cmd

import (
	"helmdeploy/cmd/cli/app"

	"github.com/spf13/cobra"
)

var version = "dev"

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Displays the application and helm versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectVersionCommandHandler(cmd.Flags())
		if err != nil {
			return err
		}

		return handler.Handle(cmd.OutOrStdout(), version)
	},
}
