package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cachet/internal/adapters/cachefile"
	"go.trai.ch/cachet/internal/app"
	"go.trai.ch/cachet/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestProvider(ctrl *gomock.Controller) (ComponentProvider, *mocks.MockLogger) {
	mockLoader := mocks.NewMockSettingsLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	application := app.New(cachefile.NewCodec(), mockLoader, nil, mockLogger)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: mockLogger,
		}, func() {}, nil
	}
	return provider, mockLogger
}

// TestRun_Version verifies that the run function returns 0 when the command succeeds.
func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider, _ := newTestProvider(ctrl)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_ProviderFailure verifies the exit code when wiring fails.
func TestRun_ProviderFailure(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, func() {}, errors.New("wiring failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "wiring failed")
}

// TestRun_CommandFailure verifies the exit code when the command errors.
func TestRun_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider, mockLogger := newTestProvider(ctrl)

	// A build directory that does not exist fails before anything runs.
	mockLogger.EXPECT().Error(gomock.Any())

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"configure", "/nonexistent/build-dir", "--ci"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
