package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"aurelise/config"
	deliverycontext "aurelise/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCapturedGormLogger(t *testing.T, cfg *config.Config) (*gormSlogLogger, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l, ok := newGormSlogLogger(base, cfg).(*gormSlogLogger)
	require.True(t, ok)

	return l, buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}

	return lines
}

func sqlAndRows() (string, int64) {
	return `SELECT * FROM "orders" WHERE id = 1`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		elapsed   time.Duration
		err       error
		wantMsg   string
		wantLevel string
	}{
		{
			name:      "failed query",
			err:       errors.New("connection reset"),
			wantMsg:   "GORM query failed",
			wantLevel: "ERROR",
		},
		{
			name: "record not found is silent",
			err:  gorm.ErrRecordNotFound,
		},
		{
			name:      "slow query",
			elapsed:   time.Second,
			wantMsg:   "GORM slow query",
			wantLevel: "WARN",
		},
		{
			name: "fast query outside debug is silent",
		},
		{
			name:      "fast query in debug",
			debug:     true,
			wantMsg:   "GORM query",
			wantLevel: "DEBUG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 500 * time.Millisecond}}
			cfg.Env.Debug = tt.debug
			l, buf := newCapturedGormLogger(t, cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlAndRows, tt.err)

			lines := logLines(t, buf)
			if tt.wantMsg == "" {
				assert.Empty(t, lines)

				return
			}
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantMsg, lines[0]["msg"])
			assert.Equal(t, tt.wantLevel, lines[0]["level"])
			assert.Equal(t, `SELECT * FROM "orders" WHERE id = 1`, lines[0]["sql"])
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, buf := newCapturedGormLogger(t, &config.Config{})
	reqLogger := l.logger.With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlAndRows, errors.New("deadlock detected"))

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "req-42", lines[0]["request_id"])
}

func TestGormSlogLogger_DefaultThreshold(t *testing.T) {
	l, _ := newCapturedGormLogger(t, nil)

	assert.Equal(t, config.DefaultSlowQueryThreshold, l.slowThreshold)
	assert.True(t, l.shouldLogSlow(time.Second))
	assert.False(t, l.shouldLogSlow(10*time.Millisecond))
}
