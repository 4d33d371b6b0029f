package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_AddsRoleField(t *testing.T) {
	var buf bytes.Buffer
	base := NewLogger("test-role")
	l := Logger{base.Output(&buf)}

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic, must not write anywhere
	l.Error().Msg("discarded")
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{zerolog.New(&buf)}

	ctx := l.WithContext(context.Background())
	got := FromContext(ctx)
	got.Info().Msg("from-ctx")

	assert.Contains(t, buf.String(), "from-ctx")
}

func TestFromRequest_UsesRequestContext(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{zerolog.New(&buf)}

	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	got := FromRequest(req)
	got.Info().Msg("from-req")

	assert.Contains(t, buf.String(), "from-req")
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := Logger{zerolog.New(&buf).With().Str("app", "todo").Logger()}

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("extra", "field")
	})
	child.Info().Msg("child")

	out := buf.String()
	assert.Contains(t, out, `"app":"todo"`)
	assert.Contains(t, out, `"extra":"field"`)

	// parent must not see the child's field
	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, buf.String(), "extra")
}
