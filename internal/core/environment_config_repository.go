package core

import (
	"fmt"

	"helmdeploy/internal/core/domain"
	"helmdeploy/internal/ports"

	"github.com/mattn/go-shellwords"
)

// Configuration keys. Each one is read from the upper-cased, underscored
// environment variable or from the flag of the same name.
const (
	KeyDryRun         = "dry-run"
	KeyName           = "name"
	KeyChartURL       = "helm-chart-url"
	KeyChartVersion   = "helm-chart-version"
	KeyNamespace      = "namespace"
	KeyTag            = "tag"
	KeyEnvironment    = "deployment-environment"
	KeyPrefix         = "github-secret-variable-prefix"
	KeySecretSlot     = "helm-secret-variable-name"
	KeyConfigSlot     = "helm-config-map-variable-name"
	KeyEnvVarSlot     = "helm-env-var-variable-name"
	KeySecrets        = "github-secrets"
	KeyVariables      = "github-variables"
	KeyEnvOverrides   = "helm-env-vars"
	KeyKubeconfigFile = "kubeconfig-file"
	KeyHelmBinary     = "helm-binary"
	KeyHelmExtraArgs  = "helm-extra-args"
)

const (
	envSecrets       = "GITHUB_SECRETS"
	envVariables     = "GITHUB_VARIABLES"
	envEnvOverrides  = "HELM_ENV_VARS"
	envHelmExtraArgs = "HELM_EXTRA_ARGS"
	envKubeconfig    = "KUBECONFIG_FILE"
	envDryRun        = "DRY_RUN"
)

type ConfigRepository interface {
	LoadDeploymentConfig() (*domain.DeploymentConfig, error)
}

// EnvironmentConfigRepository builds the deployment snapshot from the
// process environment.
type EnvironmentConfigRepository struct {
	environment ports.Environment
	fileSystem  ports.FileSystem
}

func ProvideEnvironmentConfigRepository(
	environment ports.Environment,
	fileSystem ports.FileSystem,
) *EnvironmentConfigRepository {
	return &EnvironmentConfigRepository{
		environment: environment,
		fileSystem:  fileSystem,
	}
}

// LoadDeploymentConfig validates the scalar parameters before any collection
// is parsed, so a missing chart URL is reported ahead of everything else.
func (r *EnvironmentConfigRepository) LoadDeploymentConfig() (*domain.DeploymentConfig, error) {
	target, loadErr := r.loadTarget()
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if loadErr != nil {
		return nil, loadErr
	}
	if err := r.ensureKubeconfig(target); err != nil {
		return nil, err
	}

	secrets, err := ParseCollection(envSecrets, r.environment.GetString(KeySecrets))
	if err != nil {
		return nil, err
	}
	variables, err := ParseCollection(envVariables, r.environment.GetString(KeyVariables))
	if err != nil {
		return nil, err
	}
	envOverrides, err := ParseCollection(envEnvOverrides, r.environment.GetString(KeyEnvOverrides))
	if err != nil {
		return nil, err
	}

	return &domain.DeploymentConfig{
		Target:       target,
		Secrets:      secrets,
		Variables:    variables,
		EnvOverrides: envOverrides,
	}, nil
}

// loadTarget always returns the target it could read, so validation can still
// report a missing chart URL ahead of a malformed value.
func (r *EnvironmentConfigRepository) loadTarget() (domain.DeploymentTarget, error) {
	target := domain.DeploymentTarget{
		Name:           r.environment.GetString(KeyName),
		Namespace:      r.environment.GetString(KeyNamespace),
		ChartURL:       r.environment.GetString(KeyChartURL),
		ChartVersion:   r.environment.GetString(KeyChartVersion),
		ImageTag:       r.environment.GetString(KeyTag),
		Environment:    r.environment.GetString(KeyEnvironment),
		KeyPrefix:      r.environment.GetString(KeyPrefix),
		SecretSlot:     r.stringOrDefault(KeySecretSlot, domain.DefaultSecretSlot),
		ConfigSlot:     r.stringOrDefault(KeyConfigSlot, domain.DefaultConfigSlot),
		EnvVarSlot:     r.stringOrDefault(KeyEnvVarSlot, domain.DefaultEnvVarSlot),
		KubeconfigFile: r.environment.GetString(KeyKubeconfigFile),
		HelmBinary:     r.stringOrDefault(KeyHelmBinary, domain.DefaultHelmBinary),
	}

	dryRun, err := r.environment.GetBool(KeyDryRun)
	if err != nil {
		return target, domain.NewConfigurationError(
			envDryRun,
			fmt.Sprintf("dry run must be true or false: %v", err),
		)
	}
	target.DryRun = dryRun

	if raw := r.environment.GetString(KeyHelmExtraArgs); raw != "" {
		args, err := shellwords.Parse(raw)
		if err != nil {
			return target, domain.NewConfigurationError(
				envHelmExtraArgs,
				fmt.Sprintf("cannot parse extra helm arguments: %v", err),
			)
		}
		target.ExtraArgs = args
	}

	return target, nil
}

// ensureKubeconfig fails fast when a configured kubeconfig is missing. Dry runs
// never reach the cluster and skip the check.
func (r *EnvironmentConfigRepository) ensureKubeconfig(target domain.DeploymentTarget) error {
	if target.KubeconfigFile == "" || target.DryRun {
		return nil
	}
	exists, err := r.fileSystem.FileExists(target.KubeconfigFile)
	if err != nil {
		return domain.NewConfigurationError(envKubeconfig, err.Error())
	}
	if !exists {
		return domain.NewConfigurationError(
			envKubeconfig,
			fmt.Sprintf("kubeconfig file %q does not exist", target.KubeconfigFile),
		)
	}
	return nil
}

func (r *EnvironmentConfigRepository) stringOrDefault(key, fallback string) string {
	if value := r.environment.GetString(key); value != "" {
		return value
	}
	return fallback
}

var _ ConfigRepository = (*EnvironmentConfigRepository)(nil)
