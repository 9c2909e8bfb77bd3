package core

import (
	"errors"
	"testing"

	"isolet/internal/core/domain"
	"isolet/internal/ports"
	"isolet/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func newTestConfigRepository(t *testing.T, env map[string]string) (*FileSystemConfigRepository, *testutil.TestFileSystem) {
	fs := testutil.NewTestFileSystem(t)
	repo := ProvideFileSystemConfigRepository(fs)
	repo.lookupEnv = fakeEnv(env)
	return repo, fs
}

func TestFileSystemConfigRepository_MissingFileUsesDefaults(t *testing.T) {
	repo, _ := newTestConfigRepository(t, map[string]string{PublicDomainEnv: "example.org"})

	config, err := repo.LoadConfig()
	require.NoError(t, err)

	expected := domain.CreateDefaultConfig()
	expected.PublicDomain = "example.org"
	assert.Equal(t, &expected, config)
}

func TestFileSystemConfigRepository_MissingDomainFailsValidation(t *testing.T) {
	repo, _ := newTestConfigRepository(t, nil)

	_, err := repo.LoadConfig()
	assert.ErrorContains(t, err, "publicDomain is required")
}

func TestFileSystemConfigRepository_LoadConfigFromFile(t *testing.T) {
	repo, fs := newTestConfigRepository(t, nil)
	content := `publicDomain: ctf.example.org
class: dynamic
registry:
  url: registry.ctf.local
gateway:
  portSource: exposure
  optimisticConcurrency: true
defaults:
  cpu: 100m
`
	require.NoError(t, fs.WriteFile("~/.isolet-config.yaml", []byte(content), ports.ReadWrite))

	config, err := repo.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "ctf.example.org", config.PublicDomain)
	assert.Equal(t, domain.ChallengeClassDynamic, config.Class)
	assert.Equal(t, "dynamic", config.Namespace())
	assert.Equal(t, "registry.ctf.local", config.Registry.URL)
	assert.Equal(t, "challenge-registry-secret", config.Registry.PullSecret)
	assert.Equal(t, domain.PortSourceExposure, config.Gateway.PortSource)
	assert.True(t, config.Gateway.OptimisticConcurrency)
	assert.Equal(t, domain.Resources{CPU: "100m", Memory: "128Mi"}, config.Defaults)
}

func TestFileSystemConfigRepository_EnvironmentOverridesFile(t *testing.T) {
	repo, fs := newTestConfigRepository(t, map[string]string{
		ClassEnv:        "isolet",
		PublicDomainEnv: "https://play.example.org:8443/",
	})
	require.NoError(t, fs.WriteFile("~/.isolet-config.yaml", []byte("publicDomain: old.example.org\nclass: dynamic\n"), ports.ReadWrite))

	config, err := repo.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "play.example.org", config.PublicDomain)
	assert.Equal(t, domain.ChallengeClassIsolet, config.Class)
}

func TestFileSystemConfigRepository_InvalidClassEnv(t *testing.T) {
	repo, _ := newTestConfigRepository(t, map[string]string{
		ClassEnv:        "cluster",
		PublicDomainEnv: "example.org",
	})

	_, err := repo.LoadConfig()
	assert.ErrorContains(t, err, ClassEnv)
}

func TestFileSystemConfigRepository_ConfigPathFromEnv(t *testing.T) {
	repo, fs := newTestConfigRepository(t, map[string]string{ConfigPathEnv: "/etc/isolet/config.yaml"})
	require.NoError(t, fs.WriteFile("/etc/isolet/config.yaml", []byte("publicDomain: example.net\n"), ports.ReadWrite))

	exists, err := repo.ConfigExists()
	require.NoError(t, err)
	assert.True(t, exists)

	config, err := repo.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "example.net", config.PublicDomain)
}

func TestFileSystemConfigRepository_UnparsableFile(t *testing.T) {
	repo, fs := newTestConfigRepository(t, nil)
	require.NoError(t, fs.WriteFile("~/.isolet-config.yaml", []byte("gateway: [oops"), ports.ReadWrite))

	_, err := repo.LoadConfig()
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestFileSystemConfigRepository_LoadConfig_CachesResult(t *testing.T) {
	repo, _ := newTestConfigRepository(t, map[string]string{PublicDomainEnv: "example.org"})

	config1, err := repo.LoadConfig()
	require.NoError(t, err)
	config2, err := repo.LoadConfig()
	require.NoError(t, err)

	assert.Same(t, config1, config2, "LoadConfig should return cached result")
}

func TestFileSystemConfigRepository_SaveConfigRoundTrips(t *testing.T) {
	repo, _ := newTestConfigRepository(t, nil)
	config := domain.CreateDefaultConfig()
	config.PublicDomain = "example.org"

	require.NoError(t, repo.SaveConfig(&config))

	exists, err := repo.ConfigExists()
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := ProvideConfig(repo)
	require.NoError(t, err)
	assert.Equal(t, &config, loaded)
}

func TestFileSystemConfigRepository_FileCheckError(t *testing.T) {
	fs := new(testutil.MockFileSystem)
	fs.On("FileExists", "~/.isolet-config.yaml").Return(false, errors.New("permission denied"))
	repo := ProvideFileSystemConfigRepository(fs)
	repo.lookupEnv = fakeEnv(nil)

	_, err := repo.LoadConfig()
	assert.ErrorContains(t, err, "permission denied")
}

func TestPublicDomainFromURL(t *testing.T) {
	tests := map[string]string{
		"example.org":                     "example.org",
		"https://example.org":             "example.org",
		"http://ctf.example.org:8080/app": "ctf.example.org",
		" example.org/ ":                  "example.org",
	}
	for input, expected := range tests {
		assert.Equal(t, expected, publicDomainFromURL(input), input)
	}
}
