package config

// EnvPrefix is the envconfig prefix; all variables also carry the explicit
// GAMESHOP_ name in their struct tags, so the prefix stays empty.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "GAMESHOP_DB_DSN"
	EnvDBHost = "GAMESHOP_DB_HOST"
	EnvDBUser = "GAMESHOP_DB_USER"
	EnvDBName = "GAMESHOP_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
