package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Service: "factory-ops", Out: &buf})

	l.Info().Msg("descartado")
	l.Named("inventory").Warn().Str("part_id", "p1").Msg("stock bajo")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry), "una sola línea JSON")
	assert.Equal(t, "factory-ops", entry["service"])
	assert.Equal(t, "inventory", entry["component"])
	assert.Equal(t, "stock bajo", entry["message"])
	assert.Equal(t, "p1", entry["part_id"])
}

func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "verbose", Out: &buf})

	l.Debug().Msg("oculto")
	assert.Zero(t, buf.Len())
	l.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
