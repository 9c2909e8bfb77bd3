package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockCredentialsProvider struct {
	mock.Mock
}

func (m *MockCredentialsProvider) RegistryIsPrivate(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
