package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captured(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	return l.WithContext(context.Background()), &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestErrorLog(t *testing.T) {
	ctx, buf := captured(t)

	ErrorLog(ctx, "Error saving cart: %v", errors.New("disk full"))
	entry := lastEntry(t, buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "Error saving cart: disk full", entry["message"])
	assert.Equal(t, "disk full", entry["error"])

	ErrorLog(ctx, "Error fetching catalog from %s: %v", "50%off.xlsx", errors.New("missing"))
	entry = lastEntry(t, buf)
	assert.Equal(t, "Error fetching catalog from 50%off.xlsx: missing", entry["message"])
	assert.Equal(t, "missing", entry["error"])

	ErrorLog(ctx, "Catalog is empty")
	entry = lastEntry(t, buf)
	assert.Equal(t, "Catalog is empty", entry["message"])
	assert.Nil(t, entry["error"])
}

func TestWithLogger(t *testing.T) {
	ctx, buf := captured(t)

	ctx = WithLogger(ctx, map[string]interface{}{"request_id": "abc"})
	InfoLog(ctx, "Loaded %d products", 12)

	entry := lastEntry(t, buf)
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "Loaded 12 products", entry["message"])
}

func TestGetLoggerFallsBackToGlobal(t *testing.T) {
	assert.Same(t, Logger(), getLogger(context.Background()))
}
