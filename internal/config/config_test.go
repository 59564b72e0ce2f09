package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LISTPARSE_DIALECT", "")
	t.Setenv("LISTPARSE_TELEMETRY", "")
	t.Setenv("LISTPARSE_PAGE_SIZE", "")

	config := Load()
	assert.Equal(t, "unix", config.Dialect)
	assert.Equal(t, 0, config.PageSize)
	assert.False(t, config.TelemetryEnabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LISTPARSE_DIALECT", "windows")
	t.Setenv("LISTPARSE_TELEMETRY", "true")
	t.Setenv("LISTPARSE_PAGE_SIZE", "25")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")

	config := Load()
	assert.Equal(t, "windows", config.Dialect)
	assert.True(t, config.TelemetryEnabled)
	assert.Equal(t, 25, config.PageSize)
	assert.Equal(t, "collector:4318", config.OTLPEndpoint)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Config{Dialect: "unix"}.Validate())
	require.Error(t, Config{}.Validate())
	require.Error(t, Config{Dialect: "unix", PageSize: -1}.Validate())
}
