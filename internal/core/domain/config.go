package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"k8s.io/apimachinery/pkg/util/validation"
)

// Helm refuses release names longer than this.
const maxReleaseNameLength = 53

const (
	DefaultHelmBinary = "helm"
	DefaultSecretSlot = "secrets"
	DefaultConfigSlot = "config"
	DefaultEnvVarSlot = "envVars"

	// DefaultCollectionPayload is used when a collection variable is unset.
	DefaultCollectionPayload = "{}"

	DeploymentKeyPrefix  = "DEPLOYMENT_"
	RedactionPlaceholder = "<REDACTED>"
	keySegmentSeparator  = "_"
)

var slotNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// DeploymentTarget holds the scalar parameters of a single deployment run.
type DeploymentTarget struct {
	Name           string
	Namespace      string
	ChartURL       string
	ChartVersion   string
	ImageTag       string
	DryRun         bool
	Environment    string
	KeyPrefix      string
	SecretSlot     string
	ConfigSlot     string
	EnvVarSlot     string
	KubeconfigFile string
	HelmBinary     string
	ExtraArgs      []string
}

// DeploymentConfig is the immutable snapshot a run is built from.
type DeploymentConfig struct {
	Target       DeploymentTarget
	Secrets      RawCollection
	Variables    RawCollection
	EnvOverrides RawCollection
}

// RequiredKeyPrefix returns the prefix a secret or variable key must carry to
// be considered for this target. Empty segments are left out together with
// their separator.
func (t DeploymentTarget) RequiredKeyPrefix() string {
	var b strings.Builder
	b.WriteString(DeploymentKeyPrefix)
	if t.KeyPrefix != "" {
		b.WriteString(t.KeyPrefix)
		b.WriteString(keySegmentSeparator)
	}
	if t.Environment != "" {
		b.WriteString(t.Environment)
		b.WriteString(keySegmentSeparator)
	}
	return b.String()
}

// Validate checks the target before any entry is filtered. A missing chart URL
// is always reported first.
func (t DeploymentTarget) Validate() error {
	if strings.TrimSpace(t.ChartURL) == "" {
		return NewConfigurationError("HELM_CHART_URL", "misconfigured action, helm chart URL is missing")
	}

	if t.Name == "" {
		return NewConfigurationError("NAME", "chart name is missing")
	}
	if len(t.Name) > maxReleaseNameLength {
		return NewConfigurationError(
			"NAME",
			fmt.Sprintf("chart name %q is longer than %d characters", t.Name, maxReleaseNameLength),
		)
	}
	if errs := validation.IsDNS1123Subdomain(t.Name); len(errs) > 0 {
		return NewConfigurationError(
			"NAME",
			fmt.Sprintf("chart name %q is not a valid release name: %s", t.Name, strings.Join(errs, "; ")),
		)
	}

	if t.Namespace != "" {
		if errs := validation.IsDNS1123Label(t.Namespace); len(errs) > 0 {
			return NewConfigurationError(
				"NAMESPACE",
				fmt.Sprintf("namespace %q is invalid: %s", t.Namespace, strings.Join(errs, "; ")),
			)
		}
	}

	if t.ChartVersion != "" {
		if _, err := semver.NewConstraint(t.ChartVersion); err != nil {
			return NewConfigurationError(
				"HELM_CHART_VERSION",
				fmt.Sprintf("chart version %q is not a valid version or constraint: %v", t.ChartVersion, err),
			)
		}
	}

	slots := []struct {
		key   string
		value string
	}{
		{"HELM_SECRET_VARIABLE_NAME", t.SecretSlot},
		{"HELM_CONFIG_MAP_VARIABLE_NAME", t.ConfigSlot},
		{"HELM_ENV_VAR_VARIABLE_NAME", t.EnvVarSlot},
	}
	for _, slot := range slots {
		if !slotNamePattern.MatchString(slot.value) {
			return NewConfigurationError(
				slot.key,
				fmt.Sprintf("flag-array name %q must be a non-empty identifier", slot.value),
			)
		}
	}

	if t.HelmBinary == "" {
		return NewConfigurationError("HELM_BINARY", "helm binary is empty")
	}

	return nil
}
