package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRenderingStore struct {
	mock.Mock
}

func (m *MockRenderingStore) Save(ctx context.Context, subdomain, rendering string) error {
	args := m.Called(ctx, subdomain, rendering)
	return args.Error(0)
}

func (m *MockRenderingStore) Load(ctx context.Context, subdomain string) (string, error) {
	args := m.Called(ctx, subdomain)
	return args.String(0), args.Error(1)
}
