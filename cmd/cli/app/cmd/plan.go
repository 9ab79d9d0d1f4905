package cmd

import (
	"helmdeploy/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Shows the selected values and command as YAML",
	Long:  `Shows which secrets, config values and env overrides would be passed to helm, with values redacted`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectPlanCommandHandler(cmd.Flags())
		if err != nil {
			return err
		}

		return handler.Handle(cmd.OutOrStdout())
	},
}
