package handler

import (
	"context"
	"strings"
	"testing"

	"isolet/internal/core/domain"
	"isolet/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintRenderCommandHandler_PrintsOneStream(t *testing.T) {
	out := captureOutput(t)

	sut := ProvidePrintRenderCommandHandler(rendererFor(new(testutil.MockTemplater),
		challenge("pwn1", domain.DeploymentTypeNC, 9001),
		challenge("web1", domain.DeploymentTypeHTTP, 8080),
	))
	require.NoError(t, sut.Handle(context.Background(), nil))

	assert.Equal(t, 5, strings.Count(out.String(), "---\n"))
	assert.Contains(t, out.String(), "kind: IngressRoute\n")
	assert.Contains(t, out.String(), "secretName: challenge-certs")
	assert.NotContains(t, out.String(), "Stored")
}

func TestPrintRenderCommandHandler_TerminatesEveryRendering(t *testing.T) {
	custom := domain.ChallengeMetadata{Name: "custom1", Subdomain: "custom1", Custom: true, DeploymentType: domain.DeploymentTypeHTTP, Deployment: "raw"}
	templater := new(testutil.MockTemplater)
	templater.On("Render", "raw", "custom1.deployment", map[string]interface{}{
		"Subd": "custom1", "Registry": "", "Namespace": "isolet",
	}).Return("kind: ConfigMap", nil)

	out := captureOutput(t)
	sut := ProvidePrintRenderCommandHandler(rendererFor(templater, custom, challenge("pwn1", domain.DeploymentTypeNC, 9001)))
	require.NoError(t, sut.Handle(context.Background(), nil))

	assert.True(t, strings.HasPrefix(out.String(), "kind: ConfigMap\n---\n"), out.String())
}
