package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-session/internal/config"
)

func TestSetup_Disabled(t *testing.T) {
	// Given: no OTLP endpoint
	conf := config.Telemetry{ServiceName: "test"}

	// When: setting up telemetry
	shutdown, err := Setup(context.Background(), conf)

	// Then: a no-op shutdown is returned
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}
