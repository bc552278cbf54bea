package config

// EnvPrefix is passed to envconfig; individual fields carry explicit
// YALLASHOP_* tags so the prefix stays a formality.
const EnvPrefix = "YALLASHOP"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Environment variable names referenced from tests and tooling.
const (
	EnvAppEnv      = "YALLASHOP_APP_ENV"
	EnvPort        = "YALLASHOP_APP_PORT"
	EnvLogLevel    = "YALLASHOP_LOG_LEVEL"
	EnvCatalogPath = "YALLASHOP_CATALOG_PATH"
	EnvCartTTL     = "YALLASHOP_CART_TTL"
	EnvRedisURL    = "YALLASHOP_REDIS_URL"
)
