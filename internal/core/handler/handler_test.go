package handler

import (
	"bytes"
	"testing"

	"isolet/internal/cli/output"
	"isolet/internal/core"
	"isolet/internal/core/domain"
	"isolet/internal/testutil"

	"github.com/stretchr/testify/mock"
)

func testConfig() *domain.Config {
	config := domain.CreateDefaultConfig()
	config.PublicDomain = "example.org"
	return &config
}

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buffer := new(bytes.Buffer)
	previousOut, previousErr := output.Out, output.Err
	output.Out, output.Err = buffer, buffer
	t.Cleanup(func() { output.Out, output.Err = previousOut, previousErr })
	return buffer
}

func challenge(name string, deploymentType domain.DeploymentType, port int32) domain.ChallengeMetadata {
	return domain.ChallengeMetadata{
		Name:           name,
		Subdomain:      name,
		Image:          "registry.local/" + name + ":latest",
		ListenPort:     port,
		DeploymentType: deploymentType,
		CPU:            "30m",
		Memory:         "128Mi",
	}
}

func resolverFor(config *domain.Config, challenges ...domain.ChallengeMetadata) *core.ChallengeResolver {
	metadata := new(testutil.MockChallengeMetadataProvider)
	metadata.On("LoadChallenges", mock.Anything, mock.Anything).Return(challenges, nil)
	credentials := new(testutil.MockCredentialsProvider)
	credentials.On("RegistryIsPrivate", mock.Anything).Return(false, nil)
	return core.ProvideChallengeResolver(metadata, credentials, config)
}

func setFor(subdomain string) interface{} {
	return mock.MatchedBy(func(set *domain.ManifestSet) bool { return set.Subdomain == subdomain })
}
