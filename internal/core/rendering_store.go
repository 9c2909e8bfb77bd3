package core

import (
	"context"
	"errors"
	"fmt"

	"isolet/internal/core/domain"
	"isolet/internal/ports"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const (
	RenderingKey = "deployment.yaml"

	componentConfig = "config"
)

// RenderingStore persists renderings keyed by subdomain.
type RenderingStore interface {
	Save(ctx context.Context, subdomain, rendering string) error
	// Load returns ErrRenderingNotFound when nothing was stored for subdomain.
	Load(ctx context.Context, subdomain string) (string, error)
}

// ConfigMapRenderingStore keeps one ConfigMap per challenge in the store namespace.
// Loaded renderings are memoised for the lifetime of the process.
type ConfigMapRenderingStore struct {
	client    ports.ClusterClient
	namespace string
	cache     *cache.Cache
	logger    *zap.Logger
}

var _ RenderingStore = (*ConfigMapRenderingStore)(nil)

func ProvideConfigMapRenderingStore(client ports.ClusterClient, config *domain.Config, logger *zap.Logger) *ConfigMapRenderingStore {
	return &ConfigMapRenderingStore{
		client:    client,
		namespace: config.Namespaces.Store,
		cache:     cache.New(cache.NoExpiration, 0),
		logger:    logger,
	}
}

func RenderingConfigMapName(subdomain string) string {
	return subdomain + "-cm"
}

// Save creates the rendering ConfigMap, replacing it when it already exists.
func (s *ConfigMapRenderingStore) Save(ctx context.Context, subdomain, rendering string) error {
	configMap := &corev1.ConfigMap{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "ConfigMap"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      RenderingConfigMapName(subdomain),
			Namespace: s.namespace,
			Labels: map[string]string{
				domain.LabelComponent: componentConfig,
				domain.LabelPartOf:    domain.PartOfChallenges,
			},
		},
		Data: map[string]string{RenderingKey: rendering},
	}

	err := s.client.CreateConfigMap(ctx, configMap)
	if errors.Is(err, domain.ErrAlreadyExists) {
		s.logger.Debug("rendering exists, replacing", zap.String("subdomain", subdomain))
		err = s.client.UpdateConfigMap(ctx, configMap)
	}
	if err != nil {
		return fmt.Errorf("failed to store rendering of '%s': %w", subdomain, err)
	}

	s.cache.Set(subdomain, rendering, cache.NoExpiration)
	return nil
}

func (s *ConfigMapRenderingStore) Load(ctx context.Context, subdomain string) (string, error) {
	if cached, ok := s.cache.Get(subdomain); ok {
		return cached.(string), nil
	}

	configMap, err := s.client.GetConfigMap(ctx, s.namespace, RenderingConfigMapName(subdomain))
	if errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("%w: '%s'", domain.ErrRenderingNotFound, subdomain)
	}
	if err != nil {
		return "", fmt.Errorf("failed to load rendering of '%s': %w", subdomain, err)
	}

	rendering, ok := configMap.Data[RenderingKey]
	if !ok {
		return "", fmt.Errorf("%w: '%s' has no key '%s'", domain.ErrRenderingNotFound, subdomain, RenderingKey)
	}

	s.cache.Set(subdomain, rendering, cache.NoExpiration)
	return rendering, nil
}
