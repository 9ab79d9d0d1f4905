package cmd

import (
	"helmdeploy/internal/core"
	"helmdeploy/internal/logging"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "helmdeploy",
	Short: "Builds and runs a helm upgrade for a chart from CI secrets and variables",
	Long: `helmdeploy assembles a 'helm upgrade --install' command for a single chart.

Secrets and variables are read as JSON objects from GITHUB_SECRETS and
GITHUB_VARIABLES. Only entries whose key starts with
DEPLOYMENT_[<prefix>_][<environment>_] and whose value is a JSON object
{"chart": ..., "key": ..., "value": ...} naming this chart are passed to helm.
Plain overrides in HELM_ENV_VARS are always passed.

Every flag can also be given as an environment variable: upper case, with
dashes replaced by underscores (--helm-chart-url is HELM_CHART_URL).

Common workflows:
  helmdeploy deploy --dry-run     Print the command with secrets redacted
  helmdeploy deploy               Run the helm upgrade
  helmdeploy plan                 Show the selected values as YAML`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Bool(core.KeyDryRun, false, "Print the command with secret and config values redacted instead of running it")
	flags.String(core.KeyName, "", "Chart and release name")
	flags.String(core.KeyChartURL, "", "Chart reference passed to helm (required)")
	flags.String(core.KeyChartVersion, "", "Chart version or semver constraint")
	flags.String(core.KeyNamespace, "", "Target namespace")
	flags.String(core.KeyTag, "", "Image tag, set as image.tag")
	flags.String(core.KeyEnvironment, "", "Deployment environment segment of the key prefix")
	flags.String(core.KeyPrefix, "", "Team or project segment of the key prefix")
	flags.String(core.KeySecretSlot, "", "Values array receiving secrets (default \"secrets\")")
	flags.String(core.KeyConfigSlot, "", "Values array receiving config values (default \"config\")")
	flags.String(core.KeyEnvVarSlot, "", "Values array receiving env overrides (default \"envVars\")")
	flags.String(core.KeyKubeconfigFile, "", "Kubeconfig passed to helm with --kubeconfig")
	flags.String(core.KeyHelmBinary, "", "Helm executable (default \"helm\")")
	flags.String(core.KeyHelmExtraArgs, "", "Additional helm arguments, split with shell quoting rules")
	flags.String(logging.LevelKey, "", "Log level: debug, info, warn or error (default \"info\")")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
