package handler

import (
	"context"
	"fmt"

	"isolet/internal/cli/output"
	"isolet/internal/cli/progress"
	"isolet/internal/core"
	"isolet/internal/core/domain"
	"isolet/internal/ports"
)

type DeployCommandHandler struct {
	resolver *core.ChallengeResolver
	builder  *core.ResourceSpecBuilder
	applier  core.ClusterApplier
	gateway  ports.GatewayBatchOpener
	config   *domain.Config
}

func ProvideDeployCommandHandler(
	resolver *core.ChallengeResolver,
	builder *core.ResourceSpecBuilder,
	applier core.ClusterApplier,
	gateway ports.GatewayBatchOpener,
	config *domain.Config,
) DeployCommandHandler {
	return DeployCommandHandler{
		resolver: resolver,
		builder:  builder,
		applier:  applier,
		gateway:  gateway,
		config:   config,
	}
}

// Handle exposes every selected challenge and patches the gateway once for
// all non-http challenges. Custom challenges are always replayed from their
// stored rendering; replay forces that for every challenge.
func (h *DeployCommandHandler) Handle(ctx context.Context, challenges []string, replay bool) error {
	resolved, err := h.resolver.Resolve(ctx, challenges)
	if err != nil {
		return err
	}

	batch, err := h.gateway.OpenBatch(ctx)
	if err != nil {
		return err
	}

	output.PrintHeader(fmt.Sprintf("Deploying to %s", h.config.Namespace()))
	tracker := progress.NewTracker(subdomainsOf(resolved), "Deploying")
	tracker.Start()
	for i, challenge := range resolved {
		spec := challenge.Spec
		tracker.StartItem(i)
		err := h.apply(ctx, spec, replay || spec.Custom)
		tracker.CompleteItem(i, err)
		if err != nil {
			tracker.Stop()
			return err
		}

		if !spec.DeploymentType.IsHTTP() {
			port := h.config.GatewayPort(spec)
			batch.AddPortToService(domain.GatewayPortName(spec.Subdomain), port)
			batch.AddEntrypoint(spec.Subdomain, domain.EntrypointAddress(port))
		}
	}
	tracker.Stop()

	if batch.HasChanges() {
		if err := batch.Commit(ctx); err != nil {
			return err
		}
		output.PrintStep("gateway patched")
	}

	output.PrintSuccess(fmt.Sprintf("Deployed %d %s", len(resolved), output.Plural(len(resolved), "challenge", "challenges")))
	return nil
}

func (h *DeployCommandHandler) apply(ctx context.Context, spec domain.ChallengeExposureSpec, replay bool) error {
	if replay {
		return h.applier.Apply(ctx, spec.Subdomain)
	}
	set, err := h.builder.Build(spec)
	if err != nil {
		return err
	}
	return h.applier.ExposeChallenge(ctx, set)
}

func subdomainsOf(resolved []core.ResolvedChallenge) []string {
	subdomains := make([]string, len(resolved))
	for i, challenge := range resolved {
		subdomains[i] = challenge.Spec.Subdomain
	}
	return subdomains
}
