package core

import (
	"fmt"

	"isolet/internal/core/domain"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

const (
	componentDeployment = "deployment"
	componentService    = "service"
	componentIngress    = "ingress"
)

// ResourceSpecBuilder turns a challenge spec into the objects that expose it.
type ResourceSpecBuilder struct {
	publicDomain   string
	tlsSecretName  string
	pullSecretName string
}

func ProvideResourceSpecBuilder(config *domain.Config) *ResourceSpecBuilder {
	return &ResourceSpecBuilder{
		publicDomain:   config.PublicDomain,
		tlsSecretName:  config.TLSSecretName,
		pullSecretName: config.Registry.PullSecret,
	}
}

// Build returns the Deployment, Service and route of a challenge, or an
// ErrInvalidSpec error when required fields are missing.
func (b *ResourceSpecBuilder) Build(spec domain.ChallengeExposureSpec) (*domain.ManifestSet, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if spec.Custom {
		return nil, fmt.Errorf("%w: '%s' is a custom challenge and ships its own manifests", domain.ErrInvalidSpec, spec.Subdomain)
	}

	limits, err := parseLimits(spec)
	if err != nil {
		return nil, err
	}

	exposurePort := domain.ExposurePort(spec.DeploymentType, spec.ListenPort)

	return &domain.ManifestSet{
		Subdomain:    spec.Subdomain,
		Deployment:   b.deployment(spec, exposurePort, limits),
		Service:      b.service(spec, exposurePort),
		Route:        b.route(spec),
		ExposurePort: exposurePort,
	}, nil
}

func parseLimits(spec domain.ChallengeExposureSpec) (corev1.ResourceList, error) {
	cpu, err := resource.ParseQuantity(spec.Resources.CPU)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cpu limit '%s' for '%s': %v", domain.ErrInvalidSpec, spec.Resources.CPU, spec.Subdomain, err)
	}
	memory, err := resource.ParseQuantity(spec.Resources.Memory)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid memory limit '%s' for '%s': %v", domain.ErrInvalidSpec, spec.Resources.Memory, spec.Subdomain, err)
	}
	return corev1.ResourceList{
		corev1.ResourceCPU:    cpu,
		corev1.ResourceMemory: memory,
	}, nil
}

func (b *ResourceSpecBuilder) deployment(spec domain.ChallengeExposureSpec, exposurePort int32, limits corev1.ResourceList) *appsv1.Deployment {
	replicas := int32(1)

	podSpec := corev1.PodSpec{
		Containers: []corev1.Container{
			{
				Name:  spec.Subdomain,
				Image: spec.Image,
				Resources: corev1.ResourceRequirements{
					Limits: limits,
				},
				Ports: []corev1.ContainerPort{
					{ContainerPort: exposurePort},
				},
			},
		},
	}
	if spec.Private {
		podSpec.ImagePullSecrets = []corev1.LocalObjectReference{{Name: b.pullSecretName}}
	}

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      domain.ResourceName(spec.Subdomain),
			Namespace: spec.Namespace,
			Labels:    domain.ChallengeLabels(componentDeployment, spec.Subdomain),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{
				MatchLabels: domain.ChallengeLabels(componentDeployment, spec.Subdomain),
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: domain.ChallengeLabels(componentDeployment, spec.Subdomain),
				},
				Spec: podSpec,
			},
		},
	}
}

func (b *ResourceSpecBuilder) service(spec domain.ChallengeExposureSpec, exposurePort int32) *corev1.Service {
	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{APIVersion: "v1", Kind: "Service"},
		ObjectMeta: metav1.ObjectMeta{
			Name:      domain.ServiceName(spec.Subdomain),
			Namespace: spec.Namespace,
			Labels:    domain.ChallengeLabels(componentService, spec.Subdomain),
			Annotations: map[string]string{
				domain.EntryPointsAnnotation: spec.Subdomain,
			},
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceTypeClusterIP,
			Selector: map[string]string{domain.LabelName: spec.Subdomain},
			Ports: []corev1.ServicePort{
				{
					Protocol:   corev1.ProtocolTCP,
					Port:       domain.ServicePort,
					TargetPort: intstr.FromInt32(exposurePort),
				},
			},
		},
	}
}

func (b *ResourceSpecBuilder) route(spec domain.ChallengeExposureSpec) *domain.Route {
	policy := domain.RoutePolicyFor(spec.DeploymentType, spec.Subdomain, b.publicDomain)

	route := &domain.Route{
		Kind:        policy.Kind,
		Name:        domain.RouteName(spec.Subdomain),
		Namespace:   spec.Namespace,
		Labels:      domain.ChallengeLabels(componentIngress, spec.Subdomain),
		EntryPoints: policy.EntryPoints,
		Match:       policy.Match,
		ServiceName: domain.ServiceName(spec.Subdomain),
		ServicePort: domain.ServicePort,
	}
	if policy.TLS {
		route.TLSSecretName = b.tlsSecretName
	}
	return route
}
