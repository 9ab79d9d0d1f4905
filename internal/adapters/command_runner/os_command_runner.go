package command_runner

import (
	"bytes"
	"os/exec"

	"helmdeploy/internal/ports"
)

const shell = "sh"

// OsCommandRunner executes commands using os/exec.
type OsCommandRunner struct{}

func ProvideOsCommandRunner() *OsCommandRunner {
	return &OsCommandRunner{}
}

func (r *OsCommandRunner) Run(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// RunShell captures both streams separately. The error is the *exec.ExitError
// for a non-zero exit.
func (r *OsCommandRunner) RunShell(command string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(shell, "-c", command)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

var _ ports.CommandRunner = (*OsCommandRunner)(nil)
