package command_runner

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOsCommandRunner_RunShellSeparatesStreams(t *testing.T) {
	runner := ProvideOsCommandRunner()

	stdout, stderr, err := runner.RunShell(`printf '%s\n' 'a\,b' && echo 'WARNING: kubeconfig is group-readable' >&2`)

	require.NoError(t, err)
	assert.Equal(t, "a\\,b\n", string(stdout))
	assert.Equal(t, "WARNING: kubeconfig is group-readable\n", string(stderr))
}

func TestOsCommandRunner_RunShellKeepsStderrOnFailure(t *testing.T) {
	runner := ProvideOsCommandRunner()

	_, stderr, err := runner.RunShell("echo 'Error: UPGRADE FAILED' >&2; exit 3")

	require.Error(t, err)
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.Equal(t, "Error: UPGRADE FAILED\n", string(stderr))
}

func TestOsCommandRunner_RunShellKeepsLargeStderrIntact(t *testing.T) {
	runner := ProvideOsCommandRunner()

	// 100000 lines of "x" is far beyond what exec.ExitError.Stderr retains.
	_, stderr, err := runner.RunShell("yes x | head -n 100000 >&2; exit 1")

	require.Error(t, err)
	assert.Len(t, stderr, 200000)
	assert.Equal(t, 100000, strings.Count(string(stderr), "x\n"))
}

func TestOsCommandRunner_RunCombinesOutput(t *testing.T) {
	runner := ProvideOsCommandRunner()

	output, err := runner.Run("sh", "-c", "echo out; echo err >&2")

	require.NoError(t, err)
	assert.Contains(t, string(output), "out")
	assert.Contains(t, string(output), "err")
}
