package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"gamevault/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func sqlAndRows(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) {
		return sql, rows
	}
}

func TestGormSlogLogger_ReportsFailedQueries(t *testing.T) {
	gl, buf := newCapturedGormLogger(false)

	gl.Trace(context.Background(), time.Now(), sqlAndRows("SELECT 1", 0), errors.New("connection reset"))

	assert.Contains(t, buf.String(), "Query failed")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	gl, buf := newCapturedGormLogger(false)

	gl.Trace(context.Background(), time.Now(), sqlAndRows("SELECT 1", 0), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_ReportsSlowQueries(t *testing.T) {
	gl, buf := newCapturedGormLogger(false)

	gl.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows("SELECT pg_sleep(1)", 1), nil)

	assert.Contains(t, buf.String(), "Slow query")
}

func TestGormSlogLogger_QueryLoggingNeedsDebug(t *testing.T) {
	gl, buf := newCapturedGormLogger(false)
	gl.Trace(context.Background(), time.Now(), sqlAndRows("SELECT 1", 1), nil)
	assert.Empty(t, buf.String())

	gl, buf = newCapturedGormLogger(true)
	gl.Trace(context.Background(), time.Now(), sqlAndRows("SELECT 1", 1), nil)
	assert.Contains(t, buf.String(), "Query")
}
