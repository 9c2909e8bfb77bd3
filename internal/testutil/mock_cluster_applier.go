package testutil

import (
	"context"

	"isolet/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockClusterApplier struct {
	mock.Mock
}

func (m *MockClusterApplier) ExposeChallenge(ctx context.Context, set *domain.ManifestSet) error {
	args := m.Called(ctx, set)
	return args.Error(0)
}

func (m *MockClusterApplier) Apply(ctx context.Context, subdomain string) error {
	args := m.Called(ctx, subdomain)
	return args.Error(0)
}
