package main

import (
	"errors"
	"io"
	"os"

	"helmdeploy/cmd/cli/app/cmd"
	"helmdeploy/internal/cli/output"
	"helmdeploy/internal/core/domain"
)

func main() {
	os.Exit(run(os.Stderr))
}

// run executes the command line and returns the process exit status. Helm's
// own error output is written verbatim before the error line.
func run(stderr io.Writer) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var deploymentErr *domain.DeploymentError
	if errors.As(err, &deploymentErr) && len(deploymentErr.Output) > 0 {
		stderr.Write(deploymentErr.Output)
	}
	output.PrintError(stderr, err.Error())
	return domain.ExitCode(err)
}
