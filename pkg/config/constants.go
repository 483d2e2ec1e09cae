package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names.
const EnvPrefix = "CLEARWELL"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv                 = "CLEARWELL_APP_ENV"
	EnvPort                   = "CLEARWELL_APP_PORT"
	EnvDBDSN                  = "CLEARWELL_DB_DSN"
	EnvDBHost                 = "CLEARWELL_DB_HOST"
	EnvDBUser                 = "CLEARWELL_DB_USER"
	EnvDBName                 = "CLEARWELL_DB_NAME"
	EnvRedisURL               = "CLEARWELL_REDIS_URL"
	EnvJWTSecret              = "CLEARWELL_JWT_SECRET"
	EnvJWTIssuer              = "CLEARWELL_JWT_ISSUER"
	EnvJWTExpMins             = "CLEARWELL_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTLMinutes = "CLEARWELL_REFRESH_TOKEN_TTL_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// DefaultSQLiteDSN is the on-disk database used when UseSQLite is set
	// without an explicit DSN.
	DefaultSQLiteDSN = "file:clearwell.db"
)

// Fallback sample sizes when the catalog config carries zero values, e.g. a
// zero-value CatalogConfig in tests.
const (
	DefaultRandomItemSampleSize     = 10
	DefaultRandomLocationSampleSize = 5
)
