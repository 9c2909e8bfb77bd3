package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// PortSource selects which port a non-http challenge publishes on the gateway.
type PortSource string

const (
	// PortSourceListen publishes the challenge's own listen port.
	PortSourceListen PortSource = "listen"
	// PortSourceExposure publishes the protocol-determined exposure port.
	PortSourceExposure PortSource = "exposure"
)

type Namespaces struct {
	Dynamic string `yaml:"dynamic"`
	Default string `yaml:"default"`
	Store   string `yaml:"store"`
}

type Registry struct {
	URL        string `yaml:"url"`
	PullSecret string `yaml:"pullSecret"`
}

// Credentials points at the Secret whose presence marks the registry as private.
type Credentials struct {
	Namespace string `yaml:"namespace"`
	Secret    string `yaml:"secret"`
}

// GatewayConfig locates the shared edge gateway objects.
type GatewayConfig struct {
	Namespace  string     `yaml:"namespace"`
	ConfigMap  string     `yaml:"configMap"`
	ConfigKey  string     `yaml:"configKey"`
	Service    string     `yaml:"service"`
	Deployment string     `yaml:"deployment"`
	PortSource PortSource `yaml:"portSource"`
	// OptimisticConcurrency keeps the resource versions read at batch start,
	// so a commit racing another job fails with a conflict.
	OptimisticConcurrency bool `yaml:"optimisticConcurrency"`
}

// Config holds the run configuration of the exposure engine.
type Config struct {
	PublicDomain   string         `yaml:"publicDomain"`
	Class          ChallengeClass `yaml:"class"`
	ChallengesFile string         `yaml:"challengesFile"`
	Namespaces     Namespaces     `yaml:"namespaces"`
	TLSSecretName  string         `yaml:"tlsSecretName"`
	Registry       Registry       `yaml:"registry"`
	Credentials    Credentials    `yaml:"credentials"`
	Gateway        GatewayConfig  `yaml:"gateway"`
	Defaults       Resources      `yaml:"defaults"`
}

func CreateDefaultConfig() Config {
	return Config{
		Class:          ChallengeClassStatic,
		ChallengesFile: "challenges.yaml",
		Namespaces: Namespaces{
			Dynamic: "dynamic",
			Default: "isolet",
			Store:   "store",
		},
		TLSSecretName: "challenge-certs",
		Registry: Registry{
			PullSecret: "challenge-registry-secret",
		},
		Credentials: Credentials{
			Namespace: "automation",
			Secret:    "dynamic-registry-secret",
		},
		Gateway: GatewayConfig{
			Namespace:  "traefik",
			ConfigMap:  "traefik-config",
			ConfigKey:  "traefik.yaml",
			Service:    "traefik-svc",
			Deployment: "traefik-deployment",
			PortSource: PortSourceListen,
		},
		Defaults: Resources{
			CPU:    "30m",
			Memory: "128Mi",
		},
	}
}

// ApplyDefaults fills every empty field from CreateDefaultConfig.
func (c *Config) ApplyDefaults() {
	defaults := CreateDefaultConfig()

	setDefault(&c.ChallengesFile, defaults.ChallengesFile)
	setDefault(&c.Namespaces.Dynamic, defaults.Namespaces.Dynamic)
	setDefault(&c.Namespaces.Default, defaults.Namespaces.Default)
	setDefault(&c.Namespaces.Store, defaults.Namespaces.Store)
	setDefault(&c.TLSSecretName, defaults.TLSSecretName)
	setDefault(&c.Registry.PullSecret, defaults.Registry.PullSecret)
	setDefault(&c.Credentials.Namespace, defaults.Credentials.Namespace)
	setDefault(&c.Credentials.Secret, defaults.Credentials.Secret)
	setDefault(&c.Gateway.Namespace, defaults.Gateway.Namespace)
	setDefault(&c.Gateway.ConfigMap, defaults.Gateway.ConfigMap)
	setDefault(&c.Gateway.ConfigKey, defaults.Gateway.ConfigKey)
	setDefault(&c.Gateway.Service, defaults.Gateway.Service)
	setDefault(&c.Gateway.Deployment, defaults.Gateway.Deployment)
	setDefault(&c.Defaults.CPU, defaults.Defaults.CPU)
	setDefault(&c.Defaults.Memory, defaults.Defaults.Memory)

	if c.Class == "" {
		c.Class = defaults.Class
	}
	if c.Gateway.PortSource == "" {
		c.Gateway.PortSource = defaults.Gateway.PortSource
	}
}

func setDefault(field *string, value string) {
	if strings.TrimSpace(*field) == "" {
		*field = value
	}
}

// Namespace returns the target namespace of the run class.
func (c *Config) Namespace() string {
	if c.Class == ChallengeClassDynamic {
		return c.Namespaces.Dynamic
	}
	return c.Namespaces.Default
}

// GatewayPort returns the port a challenge publishes on the gateway.
func (c *Config) GatewayPort(spec ChallengeExposureSpec) int32 {
	if c.Gateway.PortSource == PortSourceExposure {
		return ExposurePort(spec.DeploymentType, spec.ListenPort)
	}
	return spec.ListenPort
}

func (c *Config) Validate() error {
	if c.PublicDomain == "" {
		return fmt.Errorf("publicDomain is required")
	}
	if strings.ContainsAny(c.PublicDomain, "/:` ") {
		return fmt.Errorf("publicDomain '%s' must be a bare host name", c.PublicDomain)
	}
	if _, err := ParseChallengeClass(string(c.Class)); err != nil {
		return err
	}

	switch c.Gateway.PortSource {
	case PortSourceListen, PortSourceExposure:
	default:
		return fmt.Errorf("gateway.portSource must be '%s' or '%s', got '%s'",
			PortSourceListen, PortSourceExposure, c.Gateway.PortSource)
	}

	required := map[string]string{
		"namespaces.dynamic": c.Namespaces.Dynamic,
		"namespaces.default": c.Namespaces.Default,
		"namespaces.store":   c.Namespaces.Store,
		"gateway.namespace":  c.Gateway.Namespace,
		"gateway.configMap":  c.Gateway.ConfigMap,
		"gateway.configKey":  c.Gateway.ConfigKey,
		"gateway.service":    c.Gateway.Service,
		"gateway.deployment": c.Gateway.Deployment,
	}
	for _, key := range slices.Sorted(maps.Keys(required)) {
		if strings.TrimSpace(required[key]) == "" {
			return fmt.Errorf("%s cannot be empty", key)
		}
	}

	return nil
}
