package helm

import (
	"errors"
	"os/exec"
	"testing"

	"helmdeploy/internal/core/domain"
	"helmdeploy/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const upgradeCommand = "helm upgrade app --install oci://charts/app"

// exitError produces a real *exec.ExitError with the given status.
func exitError(t *testing.T, status string) error {
	t.Helper()
	err := exec.Command("sh", "-c", "exit "+status).Run()
	require.Error(t, err)
	return err
}

func TestHelmClient_Upgrade(t *testing.T) {
	runner := new(testutil.MockCommandRunner)
	runner.On("RunShell", upgradeCommand).Return([]byte("Release \"app\" has been upgraded."), nil, nil)

	client := ProvideHelmClient(runner, zap.NewNop())

	output, err := client.Upgrade(upgradeCommand, false)
	require.NoError(t, err)
	assert.Contains(t, string(output), "has been upgraded")
	runner.AssertExpectations(t)
}

func TestHelmClient_Upgrade_LogsStderrWarnings(t *testing.T) {
	runner := new(testutil.MockCommandRunner)
	runner.On("RunShell", upgradeCommand).
		Return([]byte("Release \"app\" has been upgraded."), []byte("WARNING: kubeconfig is group-readable\n"), nil)
	core, logs := observer.New(zapcore.WarnLevel)

	client := ProvideHelmClient(runner, zap.New(core))

	_, err := client.Upgrade(upgradeCommand, false)
	require.NoError(t, err)
	entries := logs.FilterField(zap.String("stderr", "WARNING: kubeconfig is group-readable")).All()
	assert.Len(t, entries, 1)
}

func TestHelmClient_Upgrade_DryRunDoesNotExecute(t *testing.T) {
	runner := new(testutil.MockCommandRunner)
	core, logs := observer.New(zapcore.InfoLevel)

	client := ProvideHelmClient(runner, zap.New(core))

	output, err := client.Upgrade(upgradeCommand, true)
	require.NoError(t, err)
	assert.Nil(t, output)
	runner.AssertNotCalled(t, "RunShell", mock.Anything)
	entries := logs.FilterField(zap.String("command", upgradeCommand)).All()
	assert.Len(t, entries, 1)
}

func TestHelmClient_Upgrade_ExitErrorSurfacesStderr(t *testing.T) {
	runner := new(testutil.MockCommandRunner)
	runner.On("RunShell", "helm upgrade app").
		Return(nil, []byte("Error: UPGRADE FAILED: timed out\n"), exitError(t, "4"))

	client := ProvideHelmClient(runner, zap.NewNop())

	_, err := client.Upgrade("helm upgrade app", false)
	require.Error(t, err)
	var deploymentErr *domain.DeploymentError
	require.ErrorAs(t, err, &deploymentErr)
	assert.Equal(t, domain.ExecutionError, deploymentErr.Kind)
	assert.Equal(t, 4, deploymentErr.ExitCode)
	assert.Equal(t, "Error: UPGRADE FAILED: timed out\n", string(deploymentErr.Output))
}

func TestHelmClient_Upgrade_StartFailure(t *testing.T) {
	runner := new(testutil.MockCommandRunner)
	runner.On("RunShell", "helm upgrade app").
		Return(nil, nil, errors.New("exec: \"sh\": executable file not found in $PATH"))

	client := ProvideHelmClient(runner, zap.NewNop())

	_, err := client.Upgrade("helm upgrade app", false)
	assert.True(t, domain.IsKind(err, domain.ExecutionError))
	assert.Equal(t, 1, domain.ExitCode(err))
}

func TestHelmClient_Version(t *testing.T) {
	runner := new(testutil.MockCommandRunner)
	runner.On("Run", "/usr/local/bin/helm", []string{"version", "--short"}).Return([]byte("v3.19.2+g8766e71\n"), nil)

	client := ProvideHelmClient(runner, zap.NewNop())

	version, err := client.Version("/usr/local/bin/helm")
	require.NoError(t, err)
	assert.Equal(t, "v3.19.2+g8766e71", version)
	runner.AssertExpectations(t)
}

func TestHelmClient_Version_Error(t *testing.T) {
	runner := new(testutil.MockCommandRunner)
	runner.On("Run", "helm", []string{"version", "--short"}).
		Return([]byte("sh: helm: not found"), errors.New("exit status 127"))

	client := ProvideHelmClient(runner, zap.NewNop())

	_, err := client.Version("helm")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "helm version failed")
}
