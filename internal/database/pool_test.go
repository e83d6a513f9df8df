package database

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// =============================================================================
// 🧪 PoolManager 测试
// =============================================================================

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *gorm.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	// 方言初始化时会查询版本
	mock.ExpectQuery(regexp.QuoteMeta("select sqlite_version()")).
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("3.41.2"))

	gormDB, err := gorm.Open(&sqlite.Dialector{Conn: mockDB}, &gorm.Config{})
	require.NoError(t, err)

	return mockDB, mock, gormDB
}

func TestNewPoolManager(t *testing.T) {
	mockDB, _, gormDB := setupMockDB(t)
	defer mockDB.Close()

	config := PoolConfig{
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	manager, err := NewPoolManager(gormDB, config, zap.NewNop())
	require.NoError(t, err)

	assert.NotNil(t, manager)
	assert.NotNil(t, manager.DB())
	assert.NotNil(t, manager.logger)
	assert.Equal(t, config, manager.config)
}

func TestNewPoolManager_NilDB(t *testing.T) {
	_, err := NewPoolManager(nil, DefaultPoolConfig(), zap.NewNop())
	assert.Error(t, err)
}

func TestPoolManager_WithTransaction(t *testing.T) {
	mockDB, mock, gormDB := setupMockDB(t)
	defer mockDB.Close()

	manager, err := NewPoolManager(gormDB, DefaultPoolConfig(), zap.NewNop())
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err = manager.WithTransaction(context.Background(), func(tx *gorm.DB) error {
		return nil
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPoolManager_WithTransactionRollback(t *testing.T) {
	mockDB, mock, gormDB := setupMockDB(t)
	defer mockDB.Close()

	manager, err := NewPoolManager(gormDB, DefaultPoolConfig(), zap.NewNop())
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = manager.WithTransaction(context.Background(), func(tx *gorm.DB) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPoolManager_Close(t *testing.T) {
	_, mock, gormDB := setupMockDB(t)

	manager, err := NewPoolManager(gormDB, DefaultPoolConfig(), zap.NewNop())
	require.NoError(t, err)

	mock.ExpectClose()
	require.NoError(t, manager.Close())
	// 重复关闭是安全的
	require.NoError(t, manager.Close())
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Error(t, manager.Ping(context.Background()))
	assert.Error(t, manager.WithTransaction(context.Background(), func(tx *gorm.DB) error { return nil }))
}

func TestOpenSQLite_Memory(t *testing.T) {
	manager, err := OpenSQLite(context.Background(), ":memory:", DefaultPoolConfig(), zap.NewNop())
	require.NoError(t, err)
	defer manager.Close()

	require.NoError(t, manager.Ping(context.Background()))

	var one int
	require.NoError(t, manager.DB().Raw("select 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestPoolManager_WithTransactionRetry(t *testing.T) {
	manager, err := OpenSQLite(context.Background(), ":memory:", DefaultPoolConfig(), zap.NewNop())
	require.NoError(t, err)
	defer manager.Close()

	t.Run("retries lock errors", func(t *testing.T) {
		attempts := 0
		err := manager.WithTransactionRetry(context.Background(), 3, func(tx *gorm.DB) error {
			attempts++
			if attempts < 2 {
				return errors.New("database is locked (5) (SQLITE_BUSY)")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, attempts)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		attempts := 0
		err := manager.WithTransactionRetry(context.Background(), 3, func(tx *gorm.DB) error {
			attempts++
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, attempts)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		err := manager.WithTransactionRetry(context.Background(), 2, func(tx *gorm.DB) error {
			return errors.New("database is locked")
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 2 retries")
	})
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("database is locked"), true},
		{errors.New("database table is locked: runs"), true},
		{errors.New("SQLITE_BUSY"), true},
		{errors.New("driver: bad connection"), true},
		{errors.New("no such table: runs"), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isRetryableError(tt.err), "%v", tt.err)
	}
}
