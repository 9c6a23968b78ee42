package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Refresh      RefreshConfig
	GoldPrice    GoldPriceConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ATOLYE_APP_ENV" required:"true"`
	Port         string `envconfig:"ATOLYE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"ATOLYE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ATOLYE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ATOLYE_DB_DSN"`
	Driver string `envconfig:"ATOLYE_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"ATOLYE_DB_HOST"`
	Port     int    `envconfig:"ATOLYE_DB_PORT" default:"5432"`
	User     string `envconfig:"ATOLYE_DB_USER"`
	Password string `envconfig:"ATOLYE_DB_PASSWORD"`
	Name     string `envconfig:"ATOLYE_DB_NAME"`
	SSLMode  string `envconfig:"ATOLYE_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ATOLYE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ATOLYE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ATOLYE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ATOLYE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.Host == "" || db.User == "" || db.Name == "" {
		return fmt.Errorf("database config requires either ATOLYE_DB_DSN or host/user/name parts")
	}
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.User, db.Password),
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}
	q := dsn.Query()
	q.Set("sslmode", db.SSLMode)
	dsn.RawQuery = q.Encode()
	db.DSN = dsn.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"ATOLYE_REDIS_URL"`
	Address      string        `envconfig:"ATOLYE_REDIS_ADDR"`
	Password     string        `envconfig:"ATOLYE_REDIS_PASSWORD"`
	DB           int           `envconfig:"ATOLYE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ATOLYE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ATOLYE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ATOLYE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ATOLYE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ATOLYE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// RefreshConfig drives the snapshot store's reload cadence.
type RefreshConfig struct {
	Interval time.Duration `envconfig:"ATOLYE_REFRESH_INTERVAL" default:"5m"`
	MinGap   time.Duration `envconfig:"ATOLYE_REFRESH_MIN_GAP" default:"10s"`
	Debounce time.Duration `envconfig:"ATOLYE_REFRESH_DEBOUNCE" default:"2s"`
}

// GoldPriceConfig drives the upstream gold quote poller.
type GoldPriceConfig struct {
	Endpoint     string        `envconfig:"ATOLYE_GOLD_ENDPOINT" default:"https://www.goldapi.io/api/XAU/TRY"`
	APIKey       string        `envconfig:"ATOLYE_GOLD_API_KEY"`
	PollInterval time.Duration `envconfig:"ATOLYE_GOLD_POLL_INTERVAL" default:"10s"`
	CacheTTL     time.Duration `envconfig:"ATOLYE_GOLD_CACHE_TTL" default:"5m"`
	Timeout      time.Duration `envconfig:"ATOLYE_GOLD_TIMEOUT" default:"8s"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"ATOLYE_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"ATOLYE_AUTO_MIGRATE" default:"false"`
}
