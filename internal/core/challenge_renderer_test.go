package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"isolet/internal/core/domain"
	"isolet/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChallengeRenderer(templater *testutil.MockTemplater, challenges ...domain.ChallengeMetadata) *ChallengeRenderer {
	return ProvideChallengeRenderer(
		newResolver(challenges, false),
		ProvideResourceSpecBuilder(testConfig()),
		ProvideCustomManifestRenderer(templater, testConfig()),
	)
}

func TestChallengeRenderer_RendersInResolveOrder(t *testing.T) {
	custom := domain.ChallengeMetadata{Name: "custom1", Subdomain: "custom1", Custom: true, DeploymentType: domain.DeploymentTypeHTTP, Deployment: "raw"}
	templater := new(testutil.MockTemplater)
	templater.On("Render", "raw", "custom1.deployment", mock.Anything).Return("kind: ConfigMap", nil).Once()

	renderings, err := newChallengeRenderer(templater, ncMetadata(), custom).RenderAll(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, renderings, 2)

	assert.Equal(t, "pwn1", renderings[0].Subdomain)
	assert.True(t, strings.Contains(renderings[0].Manifests, "kind: IngressRouteTCP"))
	assert.Equal(t, Rendering{Subdomain: "custom1", Manifests: "kind: ConfigMap"}, renderings[1])
	templater.AssertExpectations(t)
}

func TestChallengeRenderer_FailsWithoutPartialResult(t *testing.T) {
	custom := domain.ChallengeMetadata{Name: "custom1", Subdomain: "custom1", Custom: true, DeploymentType: domain.DeploymentTypeHTTP, Deployment: "raw"}
	templater := new(testutil.MockTemplater)
	templater.On("Render", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bad template"))

	renderings, err := newChallengeRenderer(templater, ncMetadata(), custom).RenderAll(context.Background(), nil)
	assert.Nil(t, renderings)
	assert.ErrorContains(t, err, "bad template")
}
