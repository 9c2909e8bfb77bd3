package core

import (
	"context"
	"fmt"
	"slices"
	"time"

	"isolet/internal/core/domain"
	"isolet/internal/ports"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

const (
	RestartedAtAnnotation = "kubectl.kubernetes.io/restartedAt"

	entryPointsKey = "entryPoints"
)

// GatewayPatcher opens batches over the gateway described by the run config.
type GatewayPatcher struct {
	client ports.ClusterClient
	config domain.GatewayConfig
	logger *zap.Logger
	now    func() time.Time
}

var (
	_ ports.GatewayBatchOpener = (*GatewayPatcher)(nil)
	_ ports.GatewayBatch       = (*GatewayPatchBatch)(nil)
)

func ProvideGatewayPatcher(client ports.ClusterClient, config *domain.Config, logger *zap.Logger) *GatewayPatcher {
	return &GatewayPatcher{
		client: client,
		config: config.Gateway,
		logger: logger,
		now:    time.Now,
	}
}

func (p *GatewayPatcher) OpenBatch(ctx context.Context) (ports.GatewayBatch, error) {
	return NewGatewayPatchBatch(ctx, p.client, p.config, p.logger, p.now)
}

// GatewayPatchBatch is an in-memory copy of the gateway state read at
// construction. Commit replaces all three objects wholesale.
type GatewayPatchBatch struct {
	client     ports.ClusterClient
	config     domain.GatewayConfig
	logger     *zap.Logger
	now        func() time.Time
	configMap  *corev1.ConfigMap
	document   map[string]interface{}
	service    *corev1.Service
	deployment *appsv1.Deployment
	changed    bool
}

// NewGatewayPatchBatch reads the gateway ConfigMap, Service and Deployment.
// Any read failure, a missing config key or an unparsable document is fatal.
func NewGatewayPatchBatch(
	ctx context.Context,
	client ports.ClusterClient,
	config domain.GatewayConfig,
	logger *zap.Logger,
	now func() time.Time,
) (*GatewayPatchBatch, error) {
	configMap, err := client.GetConfigMap(ctx, config.Namespace, config.ConfigMap)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway config: %w", err)
	}
	raw, ok := configMap.Data[config.ConfigKey]
	if !ok {
		return nil, fmt.Errorf("gateway config %s/%s has no key '%s'", config.Namespace, config.ConfigMap, config.ConfigKey)
	}

	document := map[string]interface{}{}
	if err := yaml.Unmarshal([]byte(raw), &document); err != nil {
		return nil, fmt.Errorf("failed to parse gateway config '%s': %w", config.ConfigKey, err)
	}
	if document == nil {
		document = map[string]interface{}{}
	}

	service, err := client.GetService(ctx, config.Namespace, config.Service)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway service: %w", err)
	}
	deployment, err := client.GetDeployment(ctx, config.Namespace, config.Deployment)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway deployment: %w", err)
	}

	return &GatewayPatchBatch{
		client:     client,
		config:     config,
		logger:     logger,
		now:        now,
		configMap:  configMap,
		document:   document,
		service:    service,
		deployment: deployment,
	}, nil
}

func (b *GatewayPatchBatch) entryPoints() map[string]interface{} {
	entryPoints, ok := b.document[entryPointsKey].(map[string]interface{})
	if !ok {
		entryPoints = map[string]interface{}{}
		b.document[entryPointsKey] = entryPoints
	}
	return entryPoints
}

// AddEntrypoint upserts an entrypoint. The last address recorded for a name wins.
func (b *GatewayPatchBatch) AddEntrypoint(name, address string) {
	b.entryPoints()[name] = map[string]interface{}{"address": address}
	b.changed = true
}

// AddPortToService appends a TCP port unless one with the same number is already listed.
func (b *GatewayPatchBatch) AddPortToService(name string, port int32) {
	if b.servicePortIndex(port) >= 0 {
		b.logger.Warn("port already exists on gateway service",
			zap.Int32("port", port),
			zap.String("service", b.config.Service),
		)
		return
	}

	b.service.Spec.Ports = append(b.service.Spec.Ports, corev1.ServicePort{
		Name:       name,
		Port:       port,
		TargetPort: intstr.FromInt32(port),
		Protocol:   corev1.ProtocolTCP,
	})
	b.changed = true
}

func (b *GatewayPatchBatch) RemoveEntrypoint(name string) {
	entryPoints := b.entryPoints()
	if _, ok := entryPoints[name]; !ok {
		b.logger.Warn("entrypoint not found in gateway config", zap.String("entrypoint", name))
		return
	}
	delete(entryPoints, name)
	b.changed = true
}

// RemovePortFromService drops the port recorded under name, or failing that
// the one with the same number. Challenges sharing a listen port share one
// Service port entry, so it stays while any entrypoint still listens on it.
func (b *GatewayPatchBatch) RemovePortFromService(name string, port int32) {
	index := slices.IndexFunc(b.service.Spec.Ports, func(p corev1.ServicePort) bool {
		return p.Name == name && p.Port == port
	})
	if index < 0 {
		index = b.servicePortIndex(port)
	}
	if index < 0 {
		b.logger.Warn("port not found on gateway service",
			zap.String("name", name),
			zap.Int32("port", port),
			zap.String("service", b.config.Service),
		)
		return
	}

	if users := b.entrypointsListeningOn(port); len(users) > 0 {
		b.logger.Info("gateway port still in use, keeping it",
			zap.Int32("port", port),
			zap.Strings("entrypoints", users),
		)
		return
	}

	b.service.Spec.Ports = slices.Delete(b.service.Spec.Ports, index, index+1)
	b.changed = true
}

func (b *GatewayPatchBatch) servicePortIndex(port int32) int {
	return slices.IndexFunc(b.service.Spec.Ports, func(p corev1.ServicePort) bool {
		return p.Port == port
	})
}

func (b *GatewayPatchBatch) entrypointsListeningOn(port int32) []string {
	address := domain.EntrypointAddress(port)
	var names []string
	for name, entryPoint := range b.entryPoints() {
		fields, ok := entryPoint.(map[string]interface{})
		if ok && fields["address"] == address {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func (b *GatewayPatchBatch) HasChanges() bool {
	return b.changed
}

// Commit writes the ConfigMap, the Service and the restarted Deployment, in
// that order. A failed write leaves the earlier ones in place.
func (b *GatewayPatchBatch) Commit(ctx context.Context) error {
	data, err := yaml.Marshal(b.document)
	if err != nil {
		return fmt.Errorf("failed to encode gateway config: %w", err)
	}

	configMap := b.configMap.DeepCopy()
	configMap.Data[b.config.ConfigKey] = string(data)
	service := b.service.DeepCopy()
	deployment := b.deployment.DeepCopy()
	if deployment.Spec.Template.Annotations == nil {
		deployment.Spec.Template.Annotations = map[string]string{}
	}
	deployment.Spec.Template.Annotations[RestartedAtAnnotation] = b.now().UTC().Format(time.RFC3339)

	if !b.config.OptimisticConcurrency {
		configMap.ResourceVersion = ""
		service.ResourceVersion = ""
		deployment.ResourceVersion = ""
	}

	if err := b.client.UpdateConfigMap(ctx, configMap); err != nil {
		return fmt.Errorf("failed to write gateway config: %w", err)
	}
	b.logger.Debug("gateway config written", zap.String("configMap", configMap.Name))

	if err := b.client.UpdateService(ctx, service); err != nil {
		return fmt.Errorf("failed to write gateway service: %w", err)
	}
	b.logger.Debug("gateway service written", zap.Int("ports", len(service.Spec.Ports)))

	if err := b.client.UpdateDeployment(ctx, deployment); err != nil {
		return fmt.Errorf("failed to restart gateway deployment: %w", err)
	}
	b.logger.Info("gateway patched and restarted", zap.String("deployment", deployment.Name))

	return nil
}
