//go:build wireinject
// +build wireinject

package app

import (
	"isolet/internal/adapters/challenges"
	"isolet/internal/adapters/container_orchestrator"
	"isolet/internal/adapters/credentials"
	"isolet/internal/adapters/filesystem"
	"isolet/internal/adapters/logging"
	"isolet/internal/adapters/templater"
	"isolet/internal/core"
	"isolet/internal/core/handler"
	"isolet/internal/ports"

	"github.com/google/wire"
)

// LocalSet provides what runs without a cluster connection
var LocalSet = wire.NewSet(
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideConfig,
	challenges.ProvideYamlChallengeProvider,
	wire.Bind(new(ports.ChallengeMetadataProvider), new(*challenges.YamlChallengeProvider)),
)

var Adapter = wire.NewSet(
	LocalSet,
	logging.ProvideLogger,
	container_orchestrator.ProvideKubernetes,
	wire.Bind(new(ports.ClusterClient), new(*container_orchestrator.Kubernetes)),
	credentials.ProvideClusterCredentialsProvider,
	wire.Bind(new(ports.CredentialsProvider), new(*credentials.ClusterCredentialsProvider)),
	templater.ProvideSprigTemplater,
	wire.Bind(new(ports.Templater), new(*templater.SprigTemplater)),
)

// RenderSet renders challenges without a cluster connection
var RenderSet = wire.NewSet(
	core.ProvideChallengeResolver,
	core.ProvideResourceSpecBuilder,
	core.ProvideCustomManifestRenderer,
	core.ProvideChallengeRenderer,
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	RenderSet,
	core.ProvideConfigMapRenderingStore,
	wire.Bind(new(core.RenderingStore), new(*core.ConfigMapRenderingStore)),
	core.ProvideManifestApplier,
	wire.Bind(new(core.ClusterApplier), new(*core.ManifestApplier)),
	core.ProvideGatewayPatcher,
	wire.Bind(new(ports.GatewayBatchOpener), new(*core.GatewayPatcher)),
	core.ProvideUndeployer,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectChallengeMetadataProvider() (ports.ChallengeMetadataProvider, error) {
	wire.Build(LocalSet)
	return &challenges.YamlChallengeProvider{}, nil
}

func InjectInitializeCommandHandler() (handler.InitializeCommandHandler, error) {
	wire.Build(
		filesystem.ProvideOsFileSystem,
		wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
		core.ProvideFileSystemConfigRepository,
		wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}

func InjectRenderCommandHandler() (handler.RenderCommandHandler, func(), error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideRenderCommandHandler,
	)
	return handler.RenderCommandHandler{}, nil, nil
}

func InjectPrintRenderCommandHandler() (handler.PrintRenderCommandHandler, func(), error) {
	wire.Build(
		LocalSet,
		logging.ProvideLogger,
		credentials.ProvideLocalCredentialsProvider,
		wire.Bind(new(ports.CredentialsProvider), new(*credentials.LocalCredentialsProvider)),
		templater.ProvideSprigTemplater,
		wire.Bind(new(ports.Templater), new(*templater.SprigTemplater)),
		RenderSet,
		handler.ProvidePrintRenderCommandHandler,
	)
	return handler.PrintRenderCommandHandler{}, nil, nil
}

func InjectDeployCommandHandler() (handler.DeployCommandHandler, func(), error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideDeployCommandHandler,
	)
	return handler.DeployCommandHandler{}, nil, nil
}

func InjectUndeployCommandHandler() (handler.UndeployCommandHandler, func(), error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideUndeployCommandHandler,
	)
	return handler.UndeployCommandHandler{}, nil, nil
}
