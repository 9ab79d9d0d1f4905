package core

import (
	"helmdeploy/internal/core/domain"
)

// DeploymentPlan is everything a run decided before invoking helm.
type DeploymentPlan struct {
	Target     domain.DeploymentTarget
	Secrets    []domain.NamedValue
	Configs    []domain.NamedValue
	EnvEntries []domain.EnvEntry
	Command    Command
}

// DeploymentPlanner runs selection and assembly over a configuration snapshot.
type DeploymentPlanner struct {
	selector  *Selector
	assembler *CommandAssembler
}

func ProvideDeploymentPlanner(selector *Selector, assembler *CommandAssembler) *DeploymentPlanner {
	return &DeploymentPlanner{
		selector:  selector,
		assembler: assembler,
	}
}

func (p *DeploymentPlanner) Plan(config *domain.DeploymentConfig) (*DeploymentPlan, error) {
	target := config.Target
	if err := target.Validate(); err != nil {
		return nil, err
	}

	secrets, err := p.selector.Select(domain.SourceSecrets, config.Secrets, target)
	if err != nil {
		return nil, err
	}
	configs, err := p.selector.Select(domain.SourceVariables, config.Variables, target)
	if err != nil {
		return nil, err
	}
	envEntries := SelectEnvEntries(config.EnvOverrides)

	return &DeploymentPlan{
		Target:     target,
		Secrets:    secrets,
		Configs:    configs,
		EnvEntries: envEntries,
		Command:    p.assembler.Assemble(target, secrets, configs, envEntries),
	}, nil
}
