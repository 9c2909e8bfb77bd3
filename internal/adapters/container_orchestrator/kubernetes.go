package container_orchestrator

import (
	"context"
	"fmt"

	"isolet/internal/core/domain"
	"isolet/internal/ports"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/discovery/cached/memory"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/restmapper"
	"k8s.io/client-go/tools/clientcmd"
)

var _ ports.ClusterClient = (*Kubernetes)(nil)

// Kubernetes talks to the cluster through the typed clientset for core
// objects and the dynamic client for everything else.
type Kubernetes struct {
	clientSet kubernetes.Interface
	dynamic   dynamic.Interface
	mapper    meta.RESTMapper
}

// ProvideKubernetes uses the in-cluster service account when available and
// the default kubeconfig loading rules otherwise.
func ProvideKubernetes() (*Kubernetes, error) {
	restConfig, err := loadRestConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes config: %v", err)
	}

	clientSet, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %v", err)
	}
	dynamicClient, err := dynamic.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic client: %v", err)
	}
	mapper := restmapper.NewDeferredDiscoveryRESTMapper(memory.NewMemCacheClient(clientSet.Discovery()))

	return NewKubernetes(clientSet, dynamicClient, mapper), nil
}

func NewKubernetes(clientSet kubernetes.Interface, dynamicClient dynamic.Interface, mapper meta.RESTMapper) *Kubernetes {
	return &Kubernetes{
		clientSet: clientSet,
		dynamic:   dynamicClient,
		mapper:    mapper,
	}
}

func loadRestConfig() (*rest.Config, error) {
	restConfig, err := rest.InClusterConfig()
	if err == nil {
		return restConfig, nil
	}
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		clientcmd.NewDefaultClientConfigLoadingRules(),
		&clientcmd.ConfigOverrides{},
	).ClientConfig()
}

// translate maps API status errors onto the domain sentinels.
func translate(err error, action, kind, namespace, name string) error {
	if err == nil {
		return nil
	}
	switch {
	case apierrors.IsAlreadyExists(err):
		return fmt.Errorf("%s %s %s/%s: %w", action, kind, namespace, name, domain.ErrAlreadyExists)
	case apierrors.IsNotFound(err):
		return fmt.Errorf("%s %s %s/%s: %w", action, kind, namespace, name, domain.ErrNotFound)
	}
	return fmt.Errorf("failed to %s %s %s/%s: %w", action, kind, namespace, name, err)
}

func (k *Kubernetes) CreateDeployment(ctx context.Context, deployment *appsv1.Deployment) error {
	_, err := k.clientSet.AppsV1().Deployments(deployment.Namespace).Create(ctx, deployment, metav1.CreateOptions{})
	return translate(err, "create", "deployment", deployment.Namespace, deployment.Name)
}

func (k *Kubernetes) CreateService(ctx context.Context, service *corev1.Service) error {
	_, err := k.clientSet.CoreV1().Services(service.Namespace).Create(ctx, service, metav1.CreateOptions{})
	return translate(err, "create", "service", service.Namespace, service.Name)
}

func (k *Kubernetes) CreateCustomObject(ctx context.Context, resource schema.GroupVersionResource, obj *unstructured.Unstructured) error {
	_, err := k.dynamic.Resource(resource).Namespace(obj.GetNamespace()).Create(ctx, obj, metav1.CreateOptions{})
	return translate(err, "create", resource.Resource, obj.GetNamespace(), obj.GetName())
}

func (k *Kubernetes) CreateObject(ctx context.Context, obj *unstructured.Unstructured) error {
	resource, mapping, err := k.resourceFor(obj)
	if err != nil {
		return err
	}
	_, err = resource.Create(ctx, obj, metav1.CreateOptions{})
	return translate(err, "create", mapping.Resource.Resource, obj.GetNamespace(), obj.GetName())
}

func (k *Kubernetes) DeleteObject(ctx context.Context, obj *unstructured.Unstructured) error {
	resource, mapping, err := k.resourceFor(obj)
	if err != nil {
		return err
	}
	err = resource.Delete(ctx, obj.GetName(), metav1.DeleteOptions{})
	return translate(err, "delete", mapping.Resource.Resource, obj.GetNamespace(), obj.GetName())
}

func (k *Kubernetes) resourceFor(obj *unstructured.Unstructured) (dynamic.ResourceInterface, *meta.RESTMapping, error) {
	gvk := obj.GroupVersionKind()
	mapping, err := k.mapper.RESTMapping(gvk.GroupKind(), gvk.Version)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve resource of %s: %w", gvk.String(), err)
	}

	if mapping.Scope.Name() == meta.RESTScopeNameNamespace {
		return k.dynamic.Resource(mapping.Resource).Namespace(obj.GetNamespace()), mapping, nil
	}
	return k.dynamic.Resource(mapping.Resource), mapping, nil
}

func (k *Kubernetes) DeleteDeployment(ctx context.Context, namespace, name string) error {
	err := k.clientSet.AppsV1().Deployments(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	return translate(err, "delete", "deployment", namespace, name)
}

func (k *Kubernetes) DeleteService(ctx context.Context, namespace, name string) error {
	err := k.clientSet.CoreV1().Services(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	return translate(err, "delete", "service", namespace, name)
}

func (k *Kubernetes) DeleteCustomObject(ctx context.Context, resource schema.GroupVersionResource, namespace, name string) error {
	err := k.dynamic.Resource(resource).Namespace(namespace).Delete(ctx, name, metav1.DeleteOptions{})
	return translate(err, "delete", resource.Resource, namespace, name)
}

func (k *Kubernetes) GetConfigMap(ctx context.Context, namespace, name string) (*corev1.ConfigMap, error) {
	configMap, err := k.clientSet.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, translate(err, "get", "configmap", namespace, name)
	}
	return configMap, nil
}

func (k *Kubernetes) CreateConfigMap(ctx context.Context, configMap *corev1.ConfigMap) error {
	_, err := k.clientSet.CoreV1().ConfigMaps(configMap.Namespace).Create(ctx, configMap, metav1.CreateOptions{})
	return translate(err, "create", "configmap", configMap.Namespace, configMap.Name)
}

func (k *Kubernetes) UpdateConfigMap(ctx context.Context, configMap *corev1.ConfigMap) error {
	_, err := k.clientSet.CoreV1().ConfigMaps(configMap.Namespace).Update(ctx, configMap, metav1.UpdateOptions{})
	return translate(err, "update", "configmap", configMap.Namespace, configMap.Name)
}

func (k *Kubernetes) GetService(ctx context.Context, namespace, name string) (*corev1.Service, error) {
	service, err := k.clientSet.CoreV1().Services(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, translate(err, "get", "service", namespace, name)
	}
	return service, nil
}

func (k *Kubernetes) UpdateService(ctx context.Context, service *corev1.Service) error {
	_, err := k.clientSet.CoreV1().Services(service.Namespace).Update(ctx, service, metav1.UpdateOptions{})
	return translate(err, "update", "service", service.Namespace, service.Name)
}

func (k *Kubernetes) GetDeployment(ctx context.Context, namespace, name string) (*appsv1.Deployment, error) {
	deployment, err := k.clientSet.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, translate(err, "get", "deployment", namespace, name)
	}
	return deployment, nil
}

func (k *Kubernetes) UpdateDeployment(ctx context.Context, deployment *appsv1.Deployment) error {
	_, err := k.clientSet.AppsV1().Deployments(deployment.Namespace).Update(ctx, deployment, metav1.UpdateOptions{})
	return translate(err, "update", "deployment", deployment.Namespace, deployment.Name)
}

func (k *Kubernetes) SecretExists(ctx context.Context, namespace, name string) (bool, error) {
	_, err := k.clientSet.CoreV1().Secrets(namespace).Get(ctx, name, metav1.GetOptions{})
	if apierrors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, translate(err, "get", "secret", namespace, name)
	}
	return true, nil
}
