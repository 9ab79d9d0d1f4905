package helm

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"helmdeploy/internal/core/domain"
	"helmdeploy/internal/ports"

	"go.uber.org/zap"
)

var _ ports.HelmClient = (*HelmClient)(nil)

// HelmClient implements ports.HelmClient using the helm CLI.
type HelmClient struct {
	commandRunner ports.CommandRunner
	logger        *zap.Logger
}

// ProvideHelmClient creates a HelmClient for Wire dependency injection.
func ProvideHelmClient(runner ports.CommandRunner, logger *zap.Logger) *HelmClient {
	return &HelmClient{
		commandRunner: runner,
		logger:        logger,
	}
}

// Upgrade runs the assembled command through the shell, or only logs it under
// dry run.
func (h *HelmClient) Upgrade(command string, dryRun bool) ([]byte, error) {
	if dryRun {
		h.logger.Info("dry run, helm was not invoked", zap.String("command", command))
		return nil, nil
	}

	h.logger.Debug("running helm upgrade")
	output, stderr, err := h.commandRunner.RunShell(command)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, domain.NewExecutionError(stderr, exitErr.ExitCode(), err)
		}
		return nil, domain.NewExecutionError(stderr, 0, err)
	}
	if warnings := strings.TrimSpace(string(stderr)); warnings != "" {
		h.logger.Warn("helm wrote to stderr", zap.String("stderr", warnings))
	}

	return output, nil
}

// Version returns the short version string of the helm binary.
func (h *HelmClient) Version(binary string) (string, error) {
	output, err := h.commandRunner.Run(binary, "version", "--short")
	if err != nil {
		return "", fmt.Errorf("helm version failed: %w, output: %s", err, string(output))
	}

	return strings.TrimSpace(string(output)), nil
}
