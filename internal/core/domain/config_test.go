package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	config := CreateDefaultConfig()
	config.PublicDomain = "example.org"
	return config
}

func TestCreateDefaultConfigIsValidOnceDomainIsSet(t *testing.T) {
	config := validConfig()
	assert.NoError(t, config.Validate())

	config.PublicDomain = ""
	assert.Error(t, config.Validate())
}

func TestConfig_ApplyDefaults(t *testing.T) {
	config := Config{
		PublicDomain: "example.org",
		Namespaces:   Namespaces{Store: "renderings"},
		Gateway:      GatewayConfig{Service: "edge-svc"},
	}
	config.ApplyDefaults()

	assert.Equal(t, ChallengeClassStatic, config.Class)
	assert.Equal(t, "renderings", config.Namespaces.Store)
	assert.Equal(t, "isolet", config.Namespaces.Default)
	assert.Equal(t, "edge-svc", config.Gateway.Service)
	assert.Equal(t, "traefik-config", config.Gateway.ConfigMap)
	assert.Equal(t, "traefik.yaml", config.Gateway.ConfigKey)
	assert.Equal(t, PortSourceListen, config.Gateway.PortSource)
	assert.Equal(t, Resources{CPU: "30m", Memory: "128Mi"}, config.Defaults)
	assert.False(t, config.Gateway.OptimisticConcurrency)
	require.NoError(t, config.Validate())
}

func TestConfig_Namespace(t *testing.T) {
	config := validConfig()

	for class, expected := range map[ChallengeClass]string{
		ChallengeClassStatic:  "isolet",
		ChallengeClassIsolet:  "isolet",
		ChallengeClassDynamic: "dynamic",
	} {
		config.Class = class
		assert.Equal(t, expected, config.Namespace(), "class %s", class)
	}
}

func TestConfig_GatewayPort(t *testing.T) {
	spec := ChallengeExposureSpec{Subdomain: "pwn1", DeploymentType: DeploymentTypeNC, ListenPort: 9001}
	config := validConfig()

	assert.Equal(t, int32(9001), config.GatewayPort(spec))

	config.Gateway.PortSource = PortSourceExposure
	assert.Equal(t, int32(6969), config.GatewayPort(spec))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"url instead of host", func(c *Config) { c.PublicDomain = "https://example.org" }, "bare host name"},
		{"unknown class", func(c *Config) { c.Class = "shared" }, "unknown challenge class"},
		{"unknown port source", func(c *Config) { c.Gateway.PortSource = "random" }, "gateway.portSource"},
		{"empty store namespace", func(c *Config) { c.Namespaces.Store = "" }, "namespaces.store cannot be empty"},
		{"empty gateway config key", func(c *Config) { c.Gateway.ConfigKey = " " }, "gateway.configKey cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(&config)

			err := config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
