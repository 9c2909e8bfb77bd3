package testutil

import (
	"context"

	"isolet/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockChallengeMetadataProvider struct {
	mock.Mock
}

func (m *MockChallengeMetadataProvider) LoadChallenges(ctx context.Context, names []string) ([]domain.ChallengeMetadata, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChallengeMetadata), args.Error(1)
}
