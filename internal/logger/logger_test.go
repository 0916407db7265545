package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useBuffer(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Log
	Log = newLogger(&buf, level)
	t.Cleanup(func() { Log = prev })
	return &buf
}

func TestGenerationFields(t *testing.T) {
	fields := GenerationFields("generate-case-study", "req-1", Fields{"kind": "timeout"})
	assert.Equal(t, Fields{"route": "generate-case-study", "request_id": "req-1", "kind": "timeout"}, fields)

	fields = GenerationFields("chat", "", nil)
	assert.Equal(t, Fields{"route": "chat"}, fields)
}

func TestWithFieldsWritesJSONLine(t *testing.T) {
	t.Setenv("SERVICE_NAME", "")
	buf := useBuffer(t, "info")

	ErrorWithFields("generation failed", GenerationFields("chat", "req-9", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "generation failed", line["message"])
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "chat", line["route"])
	assert.Equal(t, "req-9", line["request_id"])
	assert.Equal(t, "case-studio", line["service_name"])
}

func TestLevelFiltering(t *testing.T) {
	buf := useBuffer(t, "warn")

	DebugWithFields("hidden", nil)
	InfoWithFields("hidden", nil)
	assert.Zero(t, buf.Len())

	WarnWithFields("shown", Fields{"service_name": "custom"})
	assert.Contains(t, buf.String(), `"service_name":"custom"`)
}

func TestWithServiceNameDoesNotMutateInput(t *testing.T) {
	in := Fields{"route": "chat"}
	out := withServiceName(in)

	assert.NotContains(t, in, "service_name")
	assert.Equal(t, "chat", out["route"])
	assert.NotEmpty(t, out["service_name"])
}
