package handler

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"isolet/internal/core"
	"isolet/internal/core/domain"
	"isolet/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeployHandler(config *domain.Config, applier core.ClusterApplier, batch *testutil.MockGatewayBatch, challenges ...domain.ChallengeMetadata) DeployCommandHandler {
	opener := new(testutil.MockGatewayBatchOpener)
	opener.On("OpenBatch", mock.Anything).Return(batch, nil)
	return ProvideDeployCommandHandler(
		resolverFor(config, challenges...),
		core.ProvideResourceSpecBuilder(config),
		applier,
		opener,
		config,
	)
}

func TestDeployCommandHandler_ExposesAndPatchesGatewayOnce(t *testing.T) {
	out := captureOutput(t)

	applier := new(testutil.MockClusterApplier)
	for _, name := range []string{"pwn1", "pwn2", "web1"} {
		applier.On("ExposeChallenge", mock.Anything, setFor(name)).Return(nil).Once()
	}

	batch := new(testutil.MockGatewayBatch)
	batch.On("AddPortToService", "pwn1-port", int32(9001)).Once()
	batch.On("AddEntrypoint", "pwn1", ":9001").Once()
	batch.On("AddPortToService", "pwn2-port", int32(9002)).Once()
	batch.On("AddEntrypoint", "pwn2", ":9002").Once()
	batch.On("HasChanges").Return(true)
	batch.On("Commit", mock.Anything).Return(nil).Once()

	sut := newDeployHandler(testConfig(), applier, batch,
		challenge("pwn1", domain.DeploymentTypeNC, 9001),
		challenge("pwn2", domain.DeploymentTypeNC, 9002),
		challenge("web1", domain.DeploymentTypeHTTP, 8080),
	)
	require.NoError(t, sut.Handle(context.Background(), nil, false))

	applier.AssertExpectations(t)
	batch.AssertExpectations(t)
	batch.AssertNotCalled(t, "AddEntrypoint", "web1", mock.Anything)
	assert.Contains(t, out.String(), "[1/3] Deploying pwn1...")
	assert.Contains(t, out.String(), "+ [3/3]  web1")
	assert.Contains(t, out.String(), "Deployed 3 challenges")
}

func TestDeployCommandHandler_ReplayAppliesStoredRenderings(t *testing.T) {
	captureOutput(t)

	applier := new(testutil.MockClusterApplier)
	applier.On("Apply", mock.Anything, "pwn1").Return(nil).Once()

	batch := new(testutil.MockGatewayBatch)
	batch.On("AddPortToService", mock.Anything, mock.Anything)
	batch.On("AddEntrypoint", mock.Anything, mock.Anything)
	batch.On("HasChanges").Return(true)
	batch.On("Commit", mock.Anything).Return(nil).Once()

	sut := newDeployHandler(testConfig(), applier, batch, challenge("pwn1", domain.DeploymentTypeNC, 9001))
	require.NoError(t, sut.Handle(context.Background(), []string{"pwn1"}, true))

	applier.AssertExpectations(t)
	applier.AssertNotCalled(t, "ExposeChallenge", mock.Anything, mock.Anything)
}

func TestDeployCommandHandler_CustomChallengesAlwaysReplay(t *testing.T) {
	captureOutput(t)

	custom := domain.ChallengeMetadata{Name: "custom1", Subdomain: "custom1", Custom: true, DeploymentType: domain.DeploymentTypeHTTP}
	applier := new(testutil.MockClusterApplier)
	applier.On("Apply", mock.Anything, "custom1").Return(nil).Once()
	applier.On("ExposeChallenge", mock.Anything, setFor("web1")).Return(nil).Once()

	batch := new(testutil.MockGatewayBatch)
	batch.On("HasChanges").Return(false)

	sut := newDeployHandler(testConfig(), applier, batch, custom, challenge("web1", domain.DeploymentTypeHTTP, 8080))
	require.NoError(t, sut.Handle(context.Background(), nil, false))

	applier.AssertExpectations(t)
	batch.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeployCommandHandler_ConflictAbortsWithoutCommit(t *testing.T) {
	captureOutput(t)

	applier := new(testutil.MockClusterApplier)
	applier.On("Apply", mock.Anything, "pwn1").Return(fmt.Errorf("Service isolet/pwn1-svc: %w", domain.ErrAlreadyDeployed)).Once()

	batch := new(testutil.MockGatewayBatch)

	sut := newDeployHandler(testConfig(), applier, batch,
		challenge("pwn1", domain.DeploymentTypeNC, 9001),
		challenge("pwn2", domain.DeploymentTypeNC, 9002),
	)
	err := sut.Handle(context.Background(), nil, true)

	assert.True(t, errors.Is(err, domain.ErrAlreadyDeployed))
	applier.AssertNumberOfCalls(t, "Apply", 1)
	batch.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeployCommandHandler_ExposurePortSource(t *testing.T) {
	captureOutput(t)
	config := testConfig()
	config.Gateway.PortSource = domain.PortSourceExposure

	applier := new(testutil.MockClusterApplier)
	applier.On("ExposeChallenge", mock.Anything, mock.Anything).Return(nil)

	batch := new(testutil.MockGatewayBatch)
	batch.On("AddPortToService", "pwn1-port", int32(6969)).Once()
	batch.On("AddEntrypoint", "pwn1", ":6969").Once()
	batch.On("HasChanges").Return(true)
	batch.On("Commit", mock.Anything).Return(nil)

	sut := newDeployHandler(config, applier, batch, challenge("pwn1", domain.DeploymentTypeNC, 9001))
	require.NoError(t, sut.Handle(context.Background(), nil, false))
	batch.AssertExpectations(t)
}

func TestDeployCommandHandler_GatewayReadFailureIsFatal(t *testing.T) {
	captureOutput(t)
	config := testConfig()

	opener := new(testutil.MockGatewayBatchOpener)
	opener.On("OpenBatch", mock.Anything).Return(nil, errors.New("failed to read gateway config map"))
	applier := new(testutil.MockClusterApplier)

	sut := ProvideDeployCommandHandler(
		resolverFor(config, challenge("pwn1", domain.DeploymentTypeNC, 9001)),
		core.ProvideResourceSpecBuilder(config),
		applier,
		opener,
		config,
	)
	err := sut.Handle(context.Background(), nil, false)

	assert.EqualError(t, err, "failed to read gateway config map")
	applier.AssertNotCalled(t, "ExposeChallenge", mock.Anything, mock.Anything)
}

func TestDeployCommandHandler_CommitFailureIsReturned(t *testing.T) {
	captureOutput(t)

	applier := new(testutil.MockClusterApplier)
	applier.On("ExposeChallenge", mock.Anything, mock.Anything).Return(nil)

	batch := new(testutil.MockGatewayBatch)
	batch.On("AddPortToService", mock.Anything, mock.Anything)
	batch.On("AddEntrypoint", mock.Anything, mock.Anything)
	batch.On("HasChanges").Return(true)
	batch.On("Commit", mock.Anything).Return(errors.New("failed to update gateway service"))

	sut := newDeployHandler(testConfig(), applier, batch, challenge("pwn1", domain.DeploymentTypeNC, 9001))
	assert.EqualError(t, sut.Handle(context.Background(), nil, false), "failed to update gateway service")
}
