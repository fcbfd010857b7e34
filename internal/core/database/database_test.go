package database

import (
	"context"
	"testing"

	"site-announcements/internal/core/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		name     string
		driver   string
		wantName string
		wantErr  bool
	}{
		{name: "Postgres", driver: "postgres", wantName: "postgres"},
		{name: "MySQL", driver: "mysql", wantName: "mysql"},
		{name: "Unsupported", driver: "oracle", wantErr: true},
		{name: "Empty", driver: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Dialector(tt.driver, "dsn")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedDriver)
				assert.Nil(t, d)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, d.Name())
		})
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
	assert.Nil(t, db)
}

func TestOpenWithDialector_PoolAndPing(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	// gorm pings once on open, Ping once more below
	mock.ExpectPing()
	mock.ExpectPing()

	db, err := OpenWithDialector(
		mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}),
		config.DatabaseConfig{MaxOpenConns: 7, MaxIdleConns: 3},
	)
	require.NoError(t, err)

	pool, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 7, pool.Stats().MaxOpenConnections)

	require.NoError(t, Ping(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}
