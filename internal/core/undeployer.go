package core

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"isolet/internal/core/domain"
	"isolet/internal/ports"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Undeployer removes the objects of a challenge and detaches it from the gateway.
type Undeployer struct {
	client ports.ClusterClient
	store  RenderingStore
	config *domain.Config
	logger *zap.Logger
}

func ProvideUndeployer(client ports.ClusterClient, store RenderingStore, config *domain.Config, logger *zap.Logger) *Undeployer {
	return &Undeployer{
		client: client,
		store:  store,
		config: config,
		logger: logger,
	}
}

// Undeploy deletes the Deployment, Service and route of every spec (the
// documents of the stored rendering for custom challenges) and records
// the gateway removals of non-http challenges in batch. Every deletion is
// attempted; the failures are returned combined. Objects that are already
// gone are only logged.
func (u *Undeployer) Undeploy(ctx context.Context, specs []domain.ChallengeExposureSpec, batch ports.GatewayBatch) error {
	var combined error
	for _, spec := range specs {
		combined = multierr.Append(combined, u.undeploy(ctx, spec))

		if !spec.DeploymentType.IsHTTP() {
			batch.RemoveEntrypoint(spec.Subdomain)
			batch.RemovePortFromService(domain.GatewayPortName(spec.Subdomain), u.config.GatewayPort(spec))
		}
	}
	return combined
}

type deletion struct {
	description string
	delete      func() error
}

func (u *Undeployer) undeploy(ctx context.Context, spec domain.ChallengeExposureSpec) error {
	deletions := u.generatedDeletions(ctx, spec)
	if spec.Custom {
		custom, err := u.renderedDeletions(ctx, spec)
		switch {
		case err == nil:
			deletions = custom
		case errors.Is(err, domain.ErrRenderingNotFound):
			u.logger.Warn("no stored rendering, deleting generated objects", zap.String("subdomain", spec.Subdomain))
		default:
			return err
		}
	}

	var combined error
	for _, deletion := range deletions {
		err := deletion.delete()
		switch {
		case err == nil:
			u.logger.Info("deleted", zap.String("object", deletion.description))
		case errors.Is(err, domain.ErrNotFound):
			u.logger.Warn("already deleted", zap.String("object", deletion.description))
		default:
			combined = multierr.Append(combined, fmt.Errorf("failed to delete %s: %w", deletion.description, err))
		}
	}
	return combined
}

// renderedDeletions lists the documents of the stored rendering in reverse
// creation order.
func (u *Undeployer) renderedDeletions(ctx context.Context, spec domain.ChallengeExposureSpec) ([]deletion, error) {
	rendering, err := u.store.Load(ctx, spec.Subdomain)
	if err != nil {
		return nil, err
	}
	manifests, err := DecodeRendering(rendering, spec.Namespace)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rendering of '%s': %w", spec.Subdomain, err)
	}

	deletions := make([]deletion, 0, len(manifests))
	for _, manifest := range slices.Backward(manifests) {
		switch m := manifest.(type) {
		case domain.CustomObjectManifest:
			deletions = append(deletions, deletion{
				description: m.Describe(),
				delete: func() error {
					return u.client.DeleteCustomObject(ctx, m.Resource, m.Object.GetNamespace(), m.Object.GetName())
				},
			})
		case domain.GenericManifest:
			deletions = append(deletions, deletion{
				description: m.Describe(),
				delete: func() error {
					return u.client.DeleteObject(ctx, m.Object)
				},
			})
		}
	}
	return deletions, nil
}

func (u *Undeployer) generatedDeletions(ctx context.Context, spec domain.ChallengeExposureSpec) []deletion {
	return []deletion{
		{
			description: fmt.Sprintf("Deployment %s/%s", spec.Namespace, domain.ResourceName(spec.Subdomain)),
			delete: func() error {
				return u.client.DeleteDeployment(ctx, spec.Namespace, domain.ResourceName(spec.Subdomain))
			},
		},
		{
			description: fmt.Sprintf("Service %s/%s", spec.Namespace, domain.ServiceName(spec.Subdomain)),
			delete: func() error {
				return u.client.DeleteService(ctx, spec.Namespace, domain.ServiceName(spec.Subdomain))
			},
		},
		{
			description: fmt.Sprintf("route %s/%s", spec.Namespace, domain.RouteName(spec.Subdomain)),
			delete: func() error {
				return u.client.DeleteCustomObject(ctx, domain.RouteResource(spec.DeploymentType), spec.Namespace, domain.RouteName(spec.Subdomain))
			},
		},
	}
}
