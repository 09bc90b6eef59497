package config

const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv              = "STOREFRONT_APP_ENV"
	EnvPort                = "STOREFRONT_APP_PORT"
	EnvLogLevel            = "STOREFRONT_LOG_LEVEL"
	EnvLogFormat           = "STOREFRONT_LOG_FORMAT"
	EnvAllowedOrigins      = "STOREFRONT_HTTP_ALLOWED_ORIGINS"
	EnvCatalogSeedFile     = "STOREFRONT_CATALOG_SEED_FILE"
	EnvOrderFormTimeZone   = "STOREFRONT_ORDER_FORM_TIME_ZONE"
	EnvMetricsEnabled      = "STOREFRONT_METRICS_ENABLED"
	EnvMetricsPath         = "STOREFRONT_METRICS_PATH"
	EnvHTTPShutdownTimeout = "STOREFRONT_HTTP_SHUTDOWN_TIMEOUT"
)
