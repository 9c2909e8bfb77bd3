package handler

import (
	"context"
	"fmt"

	"isolet/internal/cli/output"
	"isolet/internal/cli/progress"
	"isolet/internal/core"
)

type RenderCommandHandler struct {
	renderer *core.ChallengeRenderer
	store    core.RenderingStore
}

func ProvideRenderCommandHandler(renderer *core.ChallengeRenderer, store core.RenderingStore) RenderCommandHandler {
	return RenderCommandHandler{
		renderer: renderer,
		store:    store,
	}
}

// Handle renders every selected challenge and stores the renderings for replay.
func (h *RenderCommandHandler) Handle(ctx context.Context, challenges []string) error {
	renderings, err := h.renderer.RenderAll(ctx, challenges)
	if err != nil {
		return err
	}

	subdomains := make([]string, len(renderings))
	for i, rendering := range renderings {
		subdomains[i] = rendering.Subdomain
	}

	output.PrintHeader("Storing renderings")
	tracker := progress.NewTracker(subdomains, "Storing")
	tracker.Start()
	for i, rendering := range renderings {
		tracker.StartItem(i)
		err := h.store.Save(ctx, rendering.Subdomain, rendering.Manifests)
		tracker.CompleteItem(i, err)
		if err != nil {
			tracker.Stop()
			return err
		}
	}
	tracker.Stop()
	output.PrintSuccess(fmt.Sprintf("Stored %d %s", len(renderings), output.Plural(len(renderings), "rendering", "renderings")))
	return nil
}
