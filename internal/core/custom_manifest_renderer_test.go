package core

import (
	"errors"
	"testing"

	"isolet/internal/core/domain"
	"isolet/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomManifestRenderer_PassesPlaceholders(t *testing.T) {
	config := testConfig()
	config.Registry.URL = "registry.ctf.local"
	config.Class = domain.ChallengeClassDynamic

	templater := new(testutil.MockTemplater)
	templater.On("Render", "image: {{.Registry}}/{{.Subd}}", "pwn1.deployment", map[string]interface{}{
		"Subd":      "pwn1",
		"Registry":  "registry.ctf.local",
		"Namespace": "dynamic",
	}).Return("image: registry.ctf.local/pwn1", nil).Once()

	renderer := ProvideCustomManifestRenderer(templater, config)
	rendering, err := renderer.Render(domain.ChallengeMetadata{
		Name:       "Pwn 1",
		Subdomain:  "pwn1",
		Custom:     true,
		Deployment: "image: {{.Registry}}/{{.Subd}}",
	})

	require.NoError(t, err)
	assert.Equal(t, "image: registry.ctf.local/pwn1", rendering)
	templater.AssertExpectations(t)
}

func TestCustomManifestRenderer_Errors(t *testing.T) {
	templater := new(testutil.MockTemplater)
	renderer := ProvideCustomManifestRenderer(templater, testConfig())

	_, err := renderer.Render(domain.ChallengeMetadata{Name: "empty", Subdomain: "empty", Deployment: "  \n"})
	assert.ErrorContains(t, err, "empty deployment template")

	templater.On("Render", "{{.Broken", "broken.deployment", map[string]interface{}{
		"Subd":      "broken",
		"Registry":  "",
		"Namespace": "isolet",
	}).Return("", errors.New("unclosed action")).Once()
	_, err = renderer.Render(domain.ChallengeMetadata{Name: "broken", Subdomain: "broken", Deployment: "{{.Broken"})
	assert.ErrorContains(t, err, "unclosed action")
}
