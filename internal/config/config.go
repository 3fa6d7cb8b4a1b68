package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CORNERSTORE_"

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// 接続文字列が無いときのダミー値（テスト/開発用）
const PlaceholderConnectionString = "testing"

// Configはアプリ全体の設定
// CORNERSTORE_PORT -> port のように prefix を外して小文字にしたキーで読む。
type Config struct {
	Port string `koanf:"port" validate:"required,numeric"`
	Env  string `koanf:"env" validate:"required,oneof=development production test"`

	DBDriver           string `koanf:"db_driver" validate:"required,oneof=postgres sqlite"`
	DBConnectionString string `koanf:"db_connection_string" validate:"required"`

	LogLevel        string `koanf:"log_level" validate:"required,oneof=trace debug info warn error"`
	HTTPSRedirect   bool   `koanf:"https_redirect"`
	Seed            bool   `koanf:"seed"`
	ShutdownTimeout int    `koanf:"shutdown_timeout" validate:"gte=1"` // 秒
}

func Default() Config {
	return Config{
		Port:               "8080",
		Env:                EnvDevelopment,
		DBDriver:           DriverPostgres,
		DBConnectionString: PlaceholderConnectionString,
		LogLevel:           "info",
		Seed:               true,
		ShutdownTimeout:    10,
	}
}

// Loadは .env と環境変数から設定を読む
func Load() (Config, error) {
	//.env は無くてもよい
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	//旧名の変数も接続文字列として受け付ける
	if v := os.Getenv("CornerStoreDbConnectionString"); v != "" {
		cfg.DBConnectionString = v
	} else if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DBConnectionString = v
	}

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// Addr は ":8080" の形
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
