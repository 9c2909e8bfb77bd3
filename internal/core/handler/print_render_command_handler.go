package handler

import (
	"context"
	"strings"

	"isolet/internal/cli/output"
	"isolet/internal/core"
)

// PrintRenderCommandHandler writes renderings to stdout. It needs no cluster.
type PrintRenderCommandHandler struct {
	renderer *core.ChallengeRenderer
}

func ProvidePrintRenderCommandHandler(renderer *core.ChallengeRenderer) PrintRenderCommandHandler {
	return PrintRenderCommandHandler{renderer: renderer}
}

// Handle prints the renderings of the selected challenges as one YAML stream.
func (h *PrintRenderCommandHandler) Handle(ctx context.Context, challenges []string) error {
	renderings, err := h.renderer.RenderAll(ctx, challenges)
	if err != nil {
		return err
	}
	output.PrintRaw(joinRenderings(renderings))
	return nil
}

func joinRenderings(renderings []core.Rendering) string {
	var builder strings.Builder
	for i, rendering := range renderings {
		if i > 0 {
			builder.WriteString("---\n")
		}
		builder.WriteString(rendering.Manifests)
		if !strings.HasSuffix(rendering.Manifests, "\n") {
			builder.WriteString("\n")
		}
	}
	return builder.String()
}
