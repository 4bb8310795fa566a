package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHelpersUseGlobalLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core).Sugar())
	t.Cleanup(func() { SetLogger(nil) })

	Info("seats assigned", "flight_number", "AB1234", "assigned", 3)
	WithRequest("req-1", "POST", "/api/v1/flights/{flightNumber}/seats/auto-assign").Warn("slow")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "seats assigned", entries[0].Message)
	assert.Equal(t, "AB1234", entries[0].ContextMap()["flight_number"])
	assert.Equal(t, "req-1", entries[1].ContextMap()["request_id"])
}

func TestGetLogger_FallsBackBeforeInit(t *testing.T) {
	SetLogger(nil)
	t.Cleanup(func() { SetLogger(nil) })

	assert.NotNil(t, GetLogger())
	assert.NotPanics(t, func() { Debug("no init") })
}
