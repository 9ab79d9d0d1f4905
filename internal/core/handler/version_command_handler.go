package handler

import (
	"fmt"
	"io"

	"helmdeploy/internal/cli/output"
	"helmdeploy/internal/core"
	"helmdeploy/internal/core/domain"
	"helmdeploy/internal/ports"
)

type VersionCommandHandler struct {
	environment ports.Environment
	helmClient  ports.HelmClient
}

func ProvideVersionCommandHandler(environment ports.Environment, helmClient ports.HelmClient) VersionCommandHandler {
	return VersionCommandHandler{
		environment: environment,
		helmClient:  helmClient,
	}
}

// Handle prints the tool version and, when it can be found, the helm version.
func (h *VersionCommandHandler) Handle(w io.Writer, version string) error {
	fmt.Fprintf(w, "helmdeploy %s\n", version)

	binary := h.environment.GetString(core.KeyHelmBinary)
	if binary == "" {
		binary = domain.DefaultHelmBinary
	}
	helmVersion, err := h.helmClient.Version(binary)
	if err != nil {
		output.PrintWarning(w, fmt.Sprintf("helm is not available: %v", err))
		return nil
	}
	fmt.Fprintf(w, "helm %s\n", helmVersion)

	return nil
}
