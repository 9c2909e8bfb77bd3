package ports

import (
	"context"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// ClusterClient is the set of cluster calls the exposure engine makes.
// Implementations return domain.ErrAlreadyExists on conflicts and
// domain.ErrNotFound on missing objects, wrapped with context.
type ClusterClient interface {
	CreateDeployment(ctx context.Context, deployment *appsv1.Deployment) error
	CreateService(ctx context.Context, service *corev1.Service) error
	// CreateCustomObject creates obj at the given resource in obj's namespace.
	CreateCustomObject(ctx context.Context, resource schema.GroupVersionResource, obj *unstructured.Unstructured) error
	// CreateObject resolves the resource of obj through discovery and creates it.
	CreateObject(ctx context.Context, obj *unstructured.Unstructured) error

	DeleteDeployment(ctx context.Context, namespace, name string) error
	DeleteService(ctx context.Context, namespace, name string) error
	DeleteCustomObject(ctx context.Context, resource schema.GroupVersionResource, namespace, name string) error
	// DeleteObject resolves the resource of obj through discovery and deletes it.
	DeleteObject(ctx context.Context, obj *unstructured.Unstructured) error

	GetConfigMap(ctx context.Context, namespace, name string) (*corev1.ConfigMap, error)
	CreateConfigMap(ctx context.Context, configMap *corev1.ConfigMap) error
	UpdateConfigMap(ctx context.Context, configMap *corev1.ConfigMap) error
	GetService(ctx context.Context, namespace, name string) (*corev1.Service, error)
	UpdateService(ctx context.Context, service *corev1.Service) error
	GetDeployment(ctx context.Context, namespace, name string) (*appsv1.Deployment, error)
	UpdateDeployment(ctx context.Context, deployment *appsv1.Deployment) error

	SecretExists(ctx context.Context, namespace, name string) (bool, error)
}
