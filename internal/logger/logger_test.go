//go:build !integration

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{level: "trace", expected: zerolog.TraceLevel},
		{level: "debug", expected: zerolog.DebugLevel},
		{level: "info", expected: zerolog.InfoLevel},
		{level: "WARN", expected: zerolog.WarnLevel},
		{level: "warning", expected: zerolog.WarnLevel},
		{level: " error ", expected: zerolog.ErrorLevel},
		{level: "invalid", expected: zerolog.InfoLevel},
		{level: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.level))
		})
	}
}

func captureJSON(t *testing.T, write func()) map[string]interface{} {
	t.Helper()
	var buf bytes.Buffer
	InitWithWriter(&buf, "debug", false)
	t.Cleanup(func() { Init("info", false) })

	write()

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestInitWithWriter_JSON(t *testing.T) {
	line := captureJSON(t, func() {
		log.Info().Msg("hello")
	})

	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, ServiceName, line["service"])
	assert.Contains(t, line, "time")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestInitWithWriter_Pretty(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "info", true)
	t.Cleanup(func() { Init("info", false) })

	log.Info().Msg("pretty line")

	assert.Contains(t, buf.String(), "pretty line")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestWithRequestID(t *testing.T) {
	line := captureJSON(t, func() {
		l := WithRequestID("req-123")
		l.Info().Msg("tagged")
	})
	assert.Equal(t, "req-123", line["request_id"])
}

func TestWithContext(t *testing.T) {
	line := captureJSON(t, func() {
		l := WithContext(map[string]interface{}{"trip_id": "t1", "items": 3})
		l.Info().Msg("fields")
	})
	assert.Equal(t, "t1", line["trip_id"])
	assert.Equal(t, float64(3), line["items"])
}

func TestLogger(t *testing.T) {
	Init("info", false)
	l := Logger()
	assert.NotNil(t, &l)
}
