package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedLogger(threshold time.Duration) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewGormLogger(zap.New(core), threshold), logs
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("ErrorIsLogged", func(t *testing.T) {
		l, logs := newObservedLogger(time.Second)
		l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

		entries := logs.FilterMessage("SQL failed").All()
		assert.Len(t, entries, 1)
		assert.Equal(t, "SELECT 1", entries[0].ContextMap()["sql"])
	})

	t.Run("RecordNotFoundIsIgnored", func(t *testing.T) {
		l, logs := newObservedLogger(time.Second)
		l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Zero(t, logs.Len())
	})

	t.Run("SlowQueryWarns", func(t *testing.T) {
		l, logs := newObservedLogger(10 * time.Millisecond)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
		assert.Equal(t, 1, logs.FilterMessage("Slow SQL").Len())
	})

	t.Run("FastQuerySilentAtWarn", func(t *testing.T) {
		l, logs := newObservedLogger(time.Second)
		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Zero(t, logs.Len())
	})

	t.Run("InfoModeLogsEveryStatement", func(t *testing.T) {
		l, logs := newObservedLogger(time.Second)
		l.LogMode(gormlogger.Info).Trace(ctx, time.Now(), sqlFn, nil)
		assert.Equal(t, 1, logs.FilterMessage("SQL").Len())
	})

	t.Run("SilentModeLogsNothing", func(t *testing.T) {
		l, logs := newObservedLogger(time.Second)
		l.LogMode(gormlogger.Silent).Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
		assert.Zero(t, logs.Len())
	})
}

func TestGormLogger_LogModeDoesNotMutate(t *testing.T) {
	l, logs := newObservedLogger(0)
	_ = l.LogMode(gormlogger.Silent)

	l.Warn(context.Background(), "pool %s", "exhausted")
	assert.Equal(t, 1, logs.FilterMessage("pool exhausted").Len())
}
