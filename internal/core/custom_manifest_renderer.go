package core

import (
	"fmt"
	"strings"

	"isolet/internal/core/domain"
	"isolet/internal/ports"
)

// CustomManifestRenderer renders the manifest template shipped by a custom challenge.
type CustomManifestRenderer struct {
	templater ports.Templater
	registry  string
	namespace string
}

func ProvideCustomManifestRenderer(templater ports.Templater, config *domain.Config) *CustomManifestRenderer {
	return &CustomManifestRenderer{
		templater: templater,
		registry:  config.Registry.URL,
		namespace: config.Namespace(),
	}
}

func (r *CustomManifestRenderer) Render(challenge domain.ChallengeMetadata) (string, error) {
	if strings.TrimSpace(challenge.Deployment) == "" {
		return "", fmt.Errorf("custom challenge '%s' has an empty deployment template", challenge.Name)
	}

	values := map[string]interface{}{
		"Subd":      challenge.Subdomain,
		"Registry":  r.registry,
		"Namespace": r.namespace,
	}
	rendering, err := r.templater.Render(challenge.Deployment, challenge.Subdomain+".deployment", values)
	if err != nil {
		return "", fmt.Errorf("failed to render deployment template of '%s': %w", challenge.Name, err)
	}
	return rendering, nil
}
