package handler

import (
	"fmt"
	"io"

	"helmdeploy/internal/core"
	"helmdeploy/internal/core/domain"

	"gopkg.in/yaml.v3"
)

// PlanCommandHandler prints what a deploy would do, with every secret and
// config value redacted, without invoking helm.
type PlanCommandHandler struct {
	configRepository core.ConfigRepository
	planner          *core.DeploymentPlanner
}

type planDocument struct {
	Release   string              `yaml:"release"`
	Namespace string              `yaml:"namespace,omitempty"`
	Chart     string              `yaml:"chart"`
	Version   string              `yaml:"version,omitempty"`
	KeyPrefix string              `yaml:"keyPrefix"`
	Secrets   []domain.NamedValue `yaml:"secrets"`
	Config    []domain.NamedValue `yaml:"config"`
	EnvVars   []domain.EnvEntry   `yaml:"envVars"`
	Command   string              `yaml:"command"`
}

func ProvidePlanCommandHandler(
	configRepository core.ConfigRepository,
	planner *core.DeploymentPlanner,
) PlanCommandHandler {
	return PlanCommandHandler{
		configRepository: configRepository,
		planner:          planner,
	}
}

func (h *PlanCommandHandler) Handle(w io.Writer) error {
	config, err := h.configRepository.LoadDeploymentConfig()
	if err != nil {
		return err
	}

	redactedConfig := *config
	redactedConfig.Target.DryRun = true
	plan, err := h.planner.Plan(&redactedConfig)
	if err != nil {
		return err
	}

	document := planDocument{
		Release:   plan.Target.Name,
		Namespace: plan.Target.Namespace,
		Chart:     plan.Target.ChartURL,
		Version:   plan.Target.ChartVersion,
		KeyPrefix: plan.Target.RequiredKeyPrefix(),
		Secrets:   domain.Redacted(plan.Secrets),
		Config:    domain.Redacted(plan.Configs),
		EnvVars:   plan.EnvEntries,
		Command:   plan.Command.String(),
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(document); err != nil {
		return fmt.Errorf("failed to render plan: %w", err)
	}
	return encoder.Close()
}
