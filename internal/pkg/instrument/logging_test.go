package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestNewHandler_StampsCorrelationAndService(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "gofood", "info", nil, nil))

	ctx := SetCorrelationID(context.Background(), "cid-123")
	logger.InfoContext(ctx, "restaurant validated", "error_count", 2)

	line := decodeLine(t, &buf)
	assert.Equal(t, "cid-123", line["_cID"])
	assert.Equal(t, "gofood", line["service"])
	assert.Equal(t, "INFO", line["severity"])
	assert.Contains(t, line, "ts")
	assert.InDelta(t, 2, line["error_count"], 0)
}

func TestNewHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "gofood", "warn", nil, nil))

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.NotZero(t, buf.Len())
}

func TestNewHandler_Masks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "gofood", "debug", nil, []string{"Phone", " email "}))

	logger.Info("rider submitted",
		"phone", "+62 812 3456 7890",
		"payload", `{"name":"Budi","email":"budi@gofood.id"}`,
		"body", map[string]any{"rider": map[string]any{"Phone": "0812"}},
	)

	line := decodeLine(t, &buf)
	assert.Equal(t, "***", line["phone"])
	assert.JSONEq(t, `{"name":"Budi","email":"***"}`, line["payload"].(string))
	assert.Equal(t, map[string]any{"rider": map[string]any{"Phone": "***"}}, line["body"])
}

func TestNewHandler_MasksWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, "", "info", nil, []string{"email"})).With("email", "a@b.co")

	logger.Info("x")

	line := decodeLine(t, &buf)
	assert.Equal(t, "***", line["email"])
	assert.NotContains(t, line, "service")
}

func TestCorrelationID(t *testing.T) {
	assert.Empty(t, GetCorrelationID(context.Background()))
	assert.Equal(t, "abc", GetCorrelationID(SetCorrelationID(context.Background(), "abc")))
}

func TestMaskKeys_MaskJSON(t *testing.T) {
	keys := NewMaskKeys([]string{"phone", ""})

	out, ok := keys.MaskJSON([]byte(`[{"phone":"1"},{"name":"x"}]`))
	require.True(t, ok)
	assert.JSONEq(t, `[{"phone":"***"},{"name":"x"}]`, out)

	_, ok = keys.MaskJSON([]byte("plain text"))
	assert.False(t, ok)

	assert.Len(t, keys, 1)
}

func TestNoop(t *testing.T) {
	ins, err := New(context.Background(), nil)
	require.NoError(t, err)

	_, span := ins.Tracer("test").Start(context.Background(), "op")
	span.End()
	assert.NoError(t, ins.Shutdown(context.Background()))
}
