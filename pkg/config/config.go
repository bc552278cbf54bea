package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Cart    CartConfig
	Redis   RedisConfig
	CORS    CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"YALLASHOP_APP_ENV" required:"true"`
	Port         string `envconfig:"YALLASHOP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"YALLASHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"YALLASHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CatalogConfig controls where the product dataset comes from. An empty
// Path means the dataset bundled into the binary is used.
type CatalogConfig struct {
	Path string `envconfig:"YALLASHOP_CATALOG_PATH"`
}

// CartConfig tunes session cart persistence.
type CartConfig struct {
	TTL time.Duration `envconfig:"YALLASHOP_CART_TTL" default:"720h"`
}

type RedisConfig struct {
	URL          string        `envconfig:"YALLASHOP_REDIS_URL"`
	Address      string        `envconfig:"YALLASHOP_REDIS_ADDR"`
	Password     string        `envconfig:"YALLASHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"YALLASHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"YALLASHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"YALLASHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"YALLASHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"YALLASHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"YALLASHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"YALLASHOP_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
