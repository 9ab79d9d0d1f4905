//go:build wireinject
// +build wireinject

package app

import (
	"helmdeploy/internal/adapters/command_runner"
	"helmdeploy/internal/adapters/environment"
	"helmdeploy/internal/adapters/filesystem"
	"helmdeploy/internal/adapters/helm"
	"helmdeploy/internal/core"
	"helmdeploy/internal/core/handler"
	"helmdeploy/internal/logging"
	"helmdeploy/internal/ports"

	"github.com/google/wire"
	"github.com/spf13/pflag"
)

var Adapter = wire.NewSet(
	environment.ProvideViperEnvironment,
	wire.Bind(new(ports.Environment), new(*environment.ViperEnvironment)),
	logging.ProvideLogger,
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	helm.ProvideHelmClient,
	wire.Bind(new(ports.HelmClient), new(*helm.HelmClient)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideEnvironmentConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.EnvironmentConfigRepository)),
	core.ProvideSelector,
	core.ProvideCommandAssembler,
	core.ProvideDeploymentPlanner,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectDeployCommandHandler(flags *pflag.FlagSet) (handler.DeployCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideDeployCommandHandler,
	)
	return handler.DeployCommandHandler{}, nil
}

func InjectPlanCommandHandler(flags *pflag.FlagSet) (handler.PlanCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvidePlanCommandHandler,
	)
	return handler.PlanCommandHandler{}, nil
}

func InjectVersionCommandHandler(flags *pflag.FlagSet) (handler.VersionCommandHandler, error) {
	wire.Build(
		Adapter,
		handler.ProvideVersionCommandHandler,
	)
	return handler.VersionCommandHandler{}, nil
}
