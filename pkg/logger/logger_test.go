package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verboso"))
}

func TestNewWithWriter_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Level: "info", Service: "cmms"}, &buf)

	comp := l.Component("http")
	comp.Info().Int64("transfer_id", 9).Msg("traslado completado")
	l.Debug().Msg("no debe salir")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &ev))
	assert.Equal(t, "cmms", ev["service"])
	assert.Equal(t, "http", ev["component"])
	assert.Equal(t, "traslado completado", ev["message"])
	assert.EqualValues(t, 9, ev["transfer_id"])
}
