package testutil

import (
	"context"

	"isolet/internal/ports"

	"github.com/stretchr/testify/mock"
)

type MockGatewayBatch struct {
	mock.Mock
}

func (m *MockGatewayBatch) AddEntrypoint(name, address string) {
	m.Called(name, address)
}

func (m *MockGatewayBatch) AddPortToService(name string, port int32) {
	m.Called(name, port)
}

func (m *MockGatewayBatch) RemoveEntrypoint(name string) {
	m.Called(name)
}

func (m *MockGatewayBatch) RemovePortFromService(name string, port int32) {
	m.Called(name, port)
}

func (m *MockGatewayBatch) HasChanges() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockGatewayBatch) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockGatewayBatchOpener struct {
	mock.Mock
}

func (m *MockGatewayBatchOpener) OpenBatch(ctx context.Context) (ports.GatewayBatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.GatewayBatch), args.Error(1)
}
