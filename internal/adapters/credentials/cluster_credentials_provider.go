package credentials

import (
	"context"
	"fmt"

	"isolet/internal/core/domain"
	"isolet/internal/ports"
)

var _ ports.CredentialsProvider = (*ClusterCredentialsProvider)(nil)

// ClusterCredentialsProvider treats the registry as private when the
// configured credentials Secret exists in the cluster.
type ClusterCredentialsProvider struct {
	client      ports.ClusterClient
	credentials domain.Credentials
}

func ProvideClusterCredentialsProvider(client ports.ClusterClient, config *domain.Config) *ClusterCredentialsProvider {
	return &ClusterCredentialsProvider{
		client:      client,
		credentials: config.Credentials,
	}
}

func (p *ClusterCredentialsProvider) RegistryIsPrivate(ctx context.Context) (bool, error) {
	exists, err := p.client.SecretExists(ctx, p.credentials.Namespace, p.credentials.Secret)
	if err != nil {
		return false, fmt.Errorf("failed to look up registry credentials %s/%s: %w",
			p.credentials.Namespace, p.credentials.Secret, err)
	}
	return exists, nil
}
