package handler

import (
	"fmt"
	"io"

	"helmdeploy/internal/cli/output"
	"helmdeploy/internal/core"
	"helmdeploy/internal/ports"

	"go.uber.org/zap"
)

type DeployCommandHandler struct {
	configRepository core.ConfigRepository
	planner          *core.DeploymentPlanner
	helmClient       ports.HelmClient
	logger           *zap.Logger
}

func ProvideDeployCommandHandler(
	configRepository core.ConfigRepository,
	planner *core.DeploymentPlanner,
	helmClient ports.HelmClient,
	logger *zap.Logger,
) DeployCommandHandler {
	return DeployCommandHandler{
		configRepository: configRepository,
		planner:          planner,
		helmClient:       helmClient,
		logger:           logger,
	}
}

func (h *DeployCommandHandler) Handle(w io.Writer) error {
	config, err := h.configRepository.LoadDeploymentConfig()
	if err != nil {
		return err
	}
	target := config.Target

	if target.DryRun {
		output.PrintInfo(w, "Executing dry run...")
	}

	plan, err := h.planner.Plan(config)
	if err != nil {
		return err
	}

	h.logger.Info(
		"assembled helm command",
		zap.String("release", target.Name),
		zap.String("namespace", target.Namespace),
		zap.Int("secrets", len(plan.Secrets)),
		zap.Int("config", len(plan.Configs)),
		zap.Int("envVars", len(plan.EnvEntries)),
	)

	if target.DryRun {
		output.PrintHeader(w, "This is a dry run. Install command to be run:")
		fmt.Fprintln(w, plan.Command.Pretty())
	}

	result, err := h.helmClient.Upgrade(plan.Command.String(), target.DryRun)
	if err != nil {
		return err
	}

	if target.DryRun {
		return nil
	}

	if len(result) > 0 {
		if _, err := w.Write(result); err != nil {
			return fmt.Errorf("failed to write helm output: %w", err)
		}
	}
	output.PrintSuccess(w, fmt.Sprintf(
		"Deployed %s from %s (%d %s, %d %s, %d %s)",
		target.Name,
		target.ChartURL,
		len(plan.Secrets), output.Plural(len(plan.Secrets), "secret", "secrets"),
		len(plan.Configs), output.Plural(len(plan.Configs), "config value", "config values"),
		len(plan.EnvEntries), output.Plural(len(plan.EnvEntries), "env var", "env vars"),
	))

	return nil
}
