package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesFormattedJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "info")
	require.NoError(t, err)

	log.Info("CreateBooking: inserted %d rows", 3)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "CreateBooking: inserted 3 rows", entry["message"])
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("hidden")
	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.With("request_id", "abc").Warn("shown")
	assert.Contains(t, buf.String(), `"request_id":"abc"`)
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}
