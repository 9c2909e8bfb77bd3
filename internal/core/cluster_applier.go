package core

import (
	"context"
	"errors"
	"fmt"

	"isolet/internal/core/domain"
	"isolet/internal/ports"

	"go.uber.org/zap"
)

// ApplyStrategy decides what happens when creating one manifest fails.
// A nil return continues with the next manifest.
type ApplyStrategy interface {
	OnError(manifest domain.Manifest, err error) error
}

// BestEffortStrategy logs every failure and keeps going.
type BestEffortStrategy struct {
	logger *zap.Logger
}

func (s BestEffortStrategy) OnError(manifest domain.Manifest, err error) error {
	s.logger.Warn("failed to create manifest", zap.String("manifest", manifest.Describe()), zap.Error(err))
	return nil
}

// StrictStrategy aborts on the first failure. Conflicts become ErrAlreadyDeployed.
type StrictStrategy struct{}

func (StrictStrategy) OnError(manifest domain.Manifest, err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return fmt.Errorf("%s: %w", manifest.Describe(), domain.ErrAlreadyDeployed)
	}
	return fmt.Errorf("failed to create %s: %w", manifest.Describe(), err)
}

type ClusterApplier interface {
	ExposeChallenge(ctx context.Context, set *domain.ManifestSet) error
	Apply(ctx context.Context, subdomain string) error
}

// ManifestApplier creates manifests directly or replays stored renderings.
type ManifestApplier struct {
	client    ports.ClusterClient
	store     RenderingStore
	namespace string
	logger    *zap.Logger
}

var _ ClusterApplier = (*ManifestApplier)(nil)

func ProvideManifestApplier(
	client ports.ClusterClient,
	store RenderingStore,
	config *domain.Config,
	logger *zap.Logger,
) *ManifestApplier {
	return &ManifestApplier{
		client:    client,
		store:     store,
		namespace: config.Namespace(),
		logger:    logger,
	}
}

// ExposeChallenge creates the Deployment, Service and route of set. Failures
// are logged and the remaining objects are still attempted.
func (a *ManifestApplier) ExposeChallenge(ctx context.Context, set *domain.ManifestSet) error {
	return a.applyAll(ctx, set.Manifests(), BestEffortStrategy{logger: a.logger})
}

// Apply replays the stored rendering of subdomain. The first failure aborts
// the apply and leaves already created objects in place.
func (a *ManifestApplier) Apply(ctx context.Context, subdomain string) error {
	rendering, err := a.store.Load(ctx, subdomain)
	if err != nil {
		return err
	}

	manifests, err := DecodeRendering(rendering, a.namespace)
	if err != nil {
		return fmt.Errorf("failed to decode rendering of '%s': %w", subdomain, err)
	}

	return a.applyAll(ctx, manifests, StrictStrategy{})
}

func (a *ManifestApplier) applyAll(ctx context.Context, manifests []domain.Manifest, strategy ApplyStrategy) error {
	for _, manifest := range manifests {
		if err := a.create(ctx, manifest); err != nil {
			if err := strategy.OnError(manifest, err); err != nil {
				return err
			}
			continue
		}
		a.logger.Info("created", zap.String("manifest", manifest.Describe()))
	}
	return nil
}

func (a *ManifestApplier) create(ctx context.Context, manifest domain.Manifest) error {
	switch m := manifest.(type) {
	case domain.DeploymentManifest:
		return a.client.CreateDeployment(ctx, m.Deployment)
	case domain.ServiceManifest:
		return a.client.CreateService(ctx, m.Service)
	case domain.RouteManifest:
		return a.client.CreateCustomObject(ctx, m.Route.Resource(), m.Route.Unstructured())
	case domain.CustomObjectManifest:
		return a.client.CreateCustomObject(ctx, m.Resource, m.Object)
	case domain.GenericManifest:
		return a.client.CreateObject(ctx, m.Object)
	default:
		return fmt.Errorf("unsupported manifest %T", manifest)
	}
}
