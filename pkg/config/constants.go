package config

const (
	// EnvPrefix namespaces every environment variable the service reads.
	EnvPrefix = "ATOLYE"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv = "ATOLYE_APP_ENV"
)
