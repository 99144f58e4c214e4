package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLogger_WritesFieldsAndLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", "two")
	log.Warn(ctx, "wrn")
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, s := range []string{
		`"level":"debug"`, `"message":"dbg"`, `"a":1`,
		`"level":"info"`, `"b":"two"`,
		`"level":"warn"`,
		`"level":"error"`, `"d":4`,
	} {
		assert.Contains(t, out, s)
	}
}

func TestZerologLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf))

	log.With("module", "http", "req_id", "123").Info(context.Background(), "hello")

	out := buf.String()
	assert.Contains(t, out, `"module":"http"`)
	assert.Contains(t, out, `"req_id":"123"`)
}

func TestZerologLogger_DisabledLevelIsSilent(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerologLogger(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	log.Info(context.Background(), "quiet")
	assert.Empty(t, buf.String())
}

func TestPairs_DanglingKey(t *testing.T) {
	got := pairs([]any{"a", 1, "b"})
	assert.Equal(t, 1, got["a"])
	assert.Equal(t, "b", got["!BADKEY"])
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		level   string
		wantErr bool
	}{
		{name: "slog json", backend: BackendSlog, level: "info"},
		{name: "default backend", backend: "", level: "debug"},
		{name: "zerolog", backend: BackendZerolog, level: "warn"},
		{name: "bad backend", backend: "logrus", level: "info", wantErr: true},
		{name: "bad slog level", backend: BackendSlog, level: "loud", wantErr: true},
		{name: "bad zerolog level", backend: BackendZerolog, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(tt.backend, tt.level, &buf)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			l.Error(context.Background(), "boom", "k", "v")
			assert.Contains(t, buf.String(), "boom")
		})
	}
}
