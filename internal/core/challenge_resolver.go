package core

import (
	"context"
	"fmt"

	"isolet/internal/core/domain"
	"isolet/internal/ports"
)

// ResolvedChallenge pairs the metadata of a challenge with the exposure spec
// of the current run.
type ResolvedChallenge struct {
	Metadata domain.ChallengeMetadata
	Spec     domain.ChallengeExposureSpec
}

// ChallengeResolver turns challenge names into validated exposure specs.
type ChallengeResolver struct {
	metadataProvider    ports.ChallengeMetadataProvider
	credentialsProvider ports.CredentialsProvider
	config              *domain.Config
}

func ProvideChallengeResolver(
	metadataProvider ports.ChallengeMetadataProvider,
	credentialsProvider ports.CredentialsProvider,
	config *domain.Config,
) *ChallengeResolver {
	return &ChallengeResolver{
		metadataProvider:    metadataProvider,
		credentialsProvider: credentialsProvider,
		config:              config,
	}
}

// Resolve loads the named challenges (all of them when names is empty) and
// validates every spec before returning any.
func (r *ChallengeResolver) Resolve(ctx context.Context, names []string) ([]ResolvedChallenge, error) {
	challenges, err := r.metadataProvider.LoadChallenges(ctx, names)
	if err != nil {
		return nil, err
	}

	private, err := r.credentialsProvider.RegistryIsPrivate(ctx)
	if err != nil {
		return nil, err
	}

	namespace := r.config.Namespace()
	resolved := make([]ResolvedChallenge, 0, len(challenges))
	seen := make(map[string]string, len(challenges))
	for _, challenge := range challenges {
		spec := challenge.ExposureSpec(namespace, private)
		if err := validateResolved(challenge, spec); err != nil {
			return nil, err
		}
		if err := validateEntrypoint(challenge, spec); err != nil {
			return nil, err
		}
		if other, ok := seen[spec.Subdomain]; ok {
			return nil, fmt.Errorf("%w: '%s' and '%s' share subdomain '%s'", domain.ErrInvalidSpec, other, challenge.Name, spec.Subdomain)
		}
		seen[spec.Subdomain] = challenge.Name
		resolved = append(resolved, ResolvedChallenge{Metadata: challenge, Spec: spec})
	}
	return resolved, nil
}

// Custom challenges bring their own manifests, so only the fields the
// gateway patch needs are required.
func validateResolved(challenge domain.ChallengeMetadata, spec domain.ChallengeExposureSpec) error {
	if !spec.Custom {
		return spec.Validate()
	}
	if spec.Subdomain == "" {
		return fmt.Errorf("%w: subdomain is required", domain.ErrInvalidSpec)
	}
	if !spec.DeploymentType.IsHTTP() {
		return domain.ValidatePort(challenge.Name, spec.ListenPort)
	}
	return nil
}

// Non-http challenges get an entrypoint named after their subdomain.
func validateEntrypoint(challenge domain.ChallengeMetadata, spec domain.ChallengeExposureSpec) error {
	if spec.DeploymentType.IsHTTP() || !domain.IsReservedEntrypoint(spec.Subdomain) {
		return nil
	}
	return fmt.Errorf("%w: subdomain '%s' of '%s' is a reserved gateway entrypoint", domain.ErrInvalidSpec, spec.Subdomain, challenge.Name)
}
