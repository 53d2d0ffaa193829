package postgres

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"patrol/config"
	deliverycontext "patrol/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturingGormLogger(t *testing.T, debug bool) (logger.Interface, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newCapturingGormLogger(t, false)

		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 0), gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("query failure logs at error", func(t *testing.T) {
		l, buf := newCapturingGormLogger(t, false)

		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 0), errors.New("connection reset"))

		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "GORM query failed")
	})

	t.Run("unique violation logs at warn", func(t *testing.T) {
		l, buf := newCapturingGormLogger(t, false)

		l.Trace(context.Background(), time.Now(), sqlFn("INSERT INTO photos", 0), &pgconn.PgError{Code: pgCodeUniqueViolation})

		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "GORM constraint conflict")
	})

	t.Run("slow query logs at warn", func(t *testing.T) {
		l, buf := newCapturingGormLogger(t, false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT pg_sleep(1)", 1), nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast query logged only in debug", func(t *testing.T) {
		quiet, quietBuf := newCapturingGormLogger(t, false)
		quiet.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 1), nil)
		assert.Empty(t, quietBuf.String())

		verbose, verboseBuf := newCapturingGormLogger(t, true)
		verbose.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 1), nil)
		assert.Contains(t, verboseBuf.String(), "GORM query")
	})

	t.Run("silent mode logs nothing", func(t *testing.T) {
		l, buf := newCapturingGormLogger(t, true)

		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 0), errors.New("boom"))

		assert.Empty(t, buf.String())
	})

	t.Run("uses request-scoped logger", func(t *testing.T) {
		l, baseBuf := newCapturingGormLogger(t, false)
		reqBuf := &bytes.Buffer{}
		reqLogger := slog.New(slog.NewTextHandler(reqBuf, nil)).With(slog.String("request_id", "req-9"))
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

		l.Trace(ctx, time.Now(), sqlFn("SELECT 1", 0), errors.New("connection reset"))

		assert.Empty(t, baseBuf.String())
		assert.Contains(t, reqBuf.String(), "request_id=req-9")
	})
}

func TestTruncateSQL(t *testing.T) {
	short := "SELECT 1"
	assert.Equal(t, short, truncateSQL(short))

	long := "INSERT INTO location_samples VALUES " + strings.Repeat("(?,?,?,?,?),", 1000)
	got := truncateSQL(long)
	assert.Len(t, got[:maxLoggedSQLLength], maxLoggedSQLLength)
	assert.True(t, strings.HasSuffix(got, fmt.Sprintf("...(%d bytes)", len(long))))
}
