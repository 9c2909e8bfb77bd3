package challenges

import (
	"context"
	"fmt"

	"isolet/internal/core/domain"
	"isolet/internal/ports"

	"gopkg.in/yaml.v3"
)

var _ ports.ChallengeMetadataProvider = (*YamlChallengeProvider)(nil)

type challengesFile struct {
	Challenges []domain.ChallengeMetadata `yaml:"challenges"`
}

// YamlChallengeProvider reads challenge metadata from the configured
// challenges file.
type YamlChallengeProvider struct {
	fileSystem ports.FileSystem
	config     *domain.Config
}

func ProvideYamlChallengeProvider(fileSystem ports.FileSystem, config *domain.Config) *YamlChallengeProvider {
	return &YamlChallengeProvider{
		fileSystem: fileSystem,
		config:     config,
	}
}

func (p *YamlChallengeProvider) LoadChallenges(_ context.Context, names []string) ([]domain.ChallengeMetadata, error) {
	content, err := p.fileSystem.ReadFile(p.config.ChallengesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read challenges file %s: %w", p.config.ChallengesFile, err)
	}

	var file challengesFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse challenges file %s: %v", p.config.ChallengesFile, err)
	}

	known := make(map[string]domain.ChallengeMetadata, len(file.Challenges))
	all := make([]domain.ChallengeMetadata, 0, len(file.Challenges))
	for _, challenge := range file.Challenges {
		challenge = p.complete(challenge)
		if _, duplicate := known[challenge.Name]; duplicate {
			return nil, fmt.Errorf("challenge '%s' is listed more than once", challenge.Name)
		}
		known[challenge.Name] = challenge
		all = append(all, challenge)
	}

	if len(names) == 0 {
		return all, nil
	}

	selected := make([]domain.ChallengeMetadata, 0, len(names))
	for _, name := range names {
		challenge, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("unknown challenge '%s'", name)
		}
		selected = append(selected, challenge)
	}
	return selected, nil
}

func (p *YamlChallengeProvider) complete(challenge domain.ChallengeMetadata) domain.ChallengeMetadata {
	if challenge.Subdomain == "" {
		challenge.Subdomain = domain.ToSubdomain(challenge.Name)
	}
	if challenge.Name == "" {
		challenge.Name = challenge.Subdomain
	}
	if challenge.CPU == "" {
		challenge.CPU = p.config.Defaults.CPU
	}
	if challenge.Memory == "" {
		challenge.Memory = p.config.Defaults.Memory
	}
	return challenge
}
