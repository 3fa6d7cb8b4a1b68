package db

import (
	"database/sql"
	"fmt"
	"strings"

	"cornerstore/internal/config"
	"cornerstore/internal/logger"

	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const sqliteDriverName = "sqlite3_cornerstore"

func init() {
	//組み込みのLOWERはASCIIしか小文字にしないので、検索語と同じstrings.ToLowerに置き換える
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", strings.ToLower, true)
		},
	})
}

// Connect はDBに接続して *gorm.DB を返す。
// postgres が本番用、sqlite はローカル実行とテスト用。
func Connect(cfg config.Config, log zerolog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.New(sqlite.Config{
			DriverName: sqliteDriverName,
			DSN:        withForeignKeys(cfg.DBConnectionString),
		})
	case config.DriverPostgres, "":
		dialector = postgres.Open(cfg.DBConnectionString)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}
	return db, nil
}

// sqliteは接続ごとにFKを有効にしないとCASCADEが効かない
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
