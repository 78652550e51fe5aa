package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewWritesRoleTimestampAndCaller(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "notes-server", zerolog.DebugLevel)

	l.Info().Msg("hello")

	entry := decode(t, &buf)
	assert.Equal(t, "notes-server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "ts")
	assert.NotEmpty(t, entry["func"])
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "quiet", zerolog.WarnLevel)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Equal(t, "kept", decode(t, &buf)["message"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{in: "", want: zerolog.DebugLevel},
		{in: "info", want: zerolog.InfoLevel},
		{in: " WARN ", want: zerolog.WarnLevel},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNopDiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLoggerInheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "parent-role", zerolog.DebugLevel)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)

	child.Logger = child.With().Str("extra", "1").Logger()
	child.Info().Msg("child")

	entry := decode(t, &buf)
	assert.Equal(t, "parent-role", entry["role"])
	assert.Equal(t, "1", entry["extra"])
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "abc").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("ctx")
	assert.Equal(t, "abc", decode(t, &buf)["trace_id"])

	buf.Reset()
	r := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	FromRequest(r).Info().Msg("req")
	assert.Equal(t, "abc", decode(t, &buf)["trace_id"])

	assert.NotNil(t, FromContext(context.Background()))
}
