package handler

import (
	"context"
	"fmt"

	"isolet/internal/cli/output"
	"isolet/internal/cli/progress"
	"isolet/internal/core"
	"isolet/internal/core/domain"
	"isolet/internal/ports"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type UndeployCommandHandler struct {
	resolver   *core.ChallengeResolver
	undeployer *core.Undeployer
	gateway    ports.GatewayBatchOpener
	logger     *zap.Logger
}

func ProvideUndeployCommandHandler(
	resolver *core.ChallengeResolver,
	undeployer *core.Undeployer,
	gateway ports.GatewayBatchOpener,
	logger *zap.Logger,
) UndeployCommandHandler {
	return UndeployCommandHandler{
		resolver:   resolver,
		undeployer: undeployer,
		gateway:    gateway,
		logger:     logger,
	}
}

// Handle removes every selected challenge. Failed deletions do not stop the
// run: the gateway is still patched and the failures are returned together.
func (h *UndeployCommandHandler) Handle(ctx context.Context, challenges []string) error {
	resolved, err := h.resolver.Resolve(ctx, challenges)
	if err != nil {
		return err
	}

	batch, err := h.gateway.OpenBatch(ctx)
	if err != nil {
		return err
	}

	output.PrintHeader("Undeploying challenges")
	tracker := progress.NewTracker(subdomainsOf(resolved), "Undeploying")
	tracker.Start()
	var undeployErr error
	for i, challenge := range resolved {
		tracker.StartItem(i)
		err := h.undeployer.Undeploy(ctx, []domain.ChallengeExposureSpec{challenge.Spec}, batch)
		tracker.CompleteItem(i, err)
		undeployErr = multierr.Append(undeployErr, err)
	}
	tracker.Stop()
	for _, err := range multierr.Errors(undeployErr) {
		h.logger.Error("undeploy failed", zap.Error(err))
	}

	if batch.HasChanges() {
		if err := batch.Commit(ctx); err != nil {
			return multierr.Append(undeployErr, err)
		}
		output.PrintStep("gateway patched")
	}

	if undeployErr != nil {
		return undeployErr
	}
	output.PrintSuccess(fmt.Sprintf("Undeployed %d %s", len(resolved), output.Plural(len(resolved), "challenge", "challenges")))
	return nil
}
