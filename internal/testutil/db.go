package testutil

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"cornerstore/internal/config"
	"cornerstore/internal/infra/db"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// NewSeededDB はテストごとに独立したインメモリsqliteを作り、スキーマと初期データを入れる。
func NewSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb := NewDB(t)
	require.NoError(t, db.Seed(context.Background(), gdb))
	return gdb
}

// NewDB はスキーマだけ作った空のDB
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.Default()
	cfg.DBDriver = config.DriverSQLite
	cfg.DBConnectionString = fmt.Sprintf("file:cornerstore_test_%d?mode=memory&cache=shared", dbSeq.Add(1))

	gdb, err := db.Connect(cfg, zerolog.Nop())
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	//インメモリDBは接続ごとに別物になるので1本に絞る
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.Migrate(gdb))
	return gdb
}
