package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

type MockClusterClient struct {
	mock.Mock
}

func (m *MockClusterClient) CreateDeployment(ctx context.Context, deployment *appsv1.Deployment) error {
	args := m.Called(ctx, deployment)
	return args.Error(0)
}

func (m *MockClusterClient) CreateService(ctx context.Context, service *corev1.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockClusterClient) CreateCustomObject(ctx context.Context, resource schema.GroupVersionResource, obj *unstructured.Unstructured) error {
	args := m.Called(ctx, resource, obj)
	return args.Error(0)
}

func (m *MockClusterClient) CreateObject(ctx context.Context, obj *unstructured.Unstructured) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *MockClusterClient) DeleteDeployment(ctx context.Context, namespace, name string) error {
	args := m.Called(ctx, namespace, name)
	return args.Error(0)
}

func (m *MockClusterClient) DeleteService(ctx context.Context, namespace, name string) error {
	args := m.Called(ctx, namespace, name)
	return args.Error(0)
}

func (m *MockClusterClient) DeleteCustomObject(ctx context.Context, resource schema.GroupVersionResource, namespace, name string) error {
	args := m.Called(ctx, resource, namespace, name)
	return args.Error(0)
}

func (m *MockClusterClient) DeleteObject(ctx context.Context, obj *unstructured.Unstructured) error {
	args := m.Called(ctx, obj)
	return args.Error(0)
}

func (m *MockClusterClient) GetConfigMap(ctx context.Context, namespace, name string) (*corev1.ConfigMap, error) {
	args := m.Called(ctx, namespace, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*corev1.ConfigMap), args.Error(1)
}

func (m *MockClusterClient) CreateConfigMap(ctx context.Context, configMap *corev1.ConfigMap) error {
	args := m.Called(ctx, configMap)
	return args.Error(0)
}

func (m *MockClusterClient) UpdateConfigMap(ctx context.Context, configMap *corev1.ConfigMap) error {
	args := m.Called(ctx, configMap)
	return args.Error(0)
}

func (m *MockClusterClient) GetService(ctx context.Context, namespace, name string) (*corev1.Service, error) {
	args := m.Called(ctx, namespace, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*corev1.Service), args.Error(1)
}

func (m *MockClusterClient) UpdateService(ctx context.Context, service *corev1.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockClusterClient) GetDeployment(ctx context.Context, namespace, name string) (*appsv1.Deployment, error) {
	args := m.Called(ctx, namespace, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appsv1.Deployment), args.Error(1)
}

func (m *MockClusterClient) UpdateDeployment(ctx context.Context, deployment *appsv1.Deployment) error {
	args := m.Called(ctx, deployment)
	return args.Error(0)
}

func (m *MockClusterClient) SecretExists(ctx context.Context, namespace, name string) (bool, error) {
	args := m.Called(ctx, namespace, name)
	return args.Bool(0), args.Error(1)
}
