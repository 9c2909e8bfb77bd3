package ports

import (
	"context"

	"isolet/internal/core/domain"
)

type ChallengeMetadataProvider interface {
	// LoadChallenges returns the metadata of the named challenges, in the
	// order requested. No names selects every known challenge.
	LoadChallenges(ctx context.Context, names []string) ([]domain.ChallengeMetadata, error)
}
