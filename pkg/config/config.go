package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Catalog       CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.FeatureFlags.UseSQLite {
		cfg.DB.Driver = DriverSQLite
		if cfg.DB.DSN == "" {
			cfg.DB.DSN = DefaultSQLiteDSN
		}
		return &cfg, nil
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"CLEARWELL_APP_ENV" required:"true"`
	Port         string `envconfig:"CLEARWELL_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"CLEARWELL_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"CLEARWELL_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"CLEARWELL_DB_DSN"`
	Driver string `envconfig:"CLEARWELL_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"CLEARWELL_DB_HOST"`
	LegacyPort     int    `envconfig:"CLEARWELL_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"CLEARWELL_DB_USER"`
	LegacyPassword string `envconfig:"CLEARWELL_DB_PASSWORD"`
	LegacyName     string `envconfig:"CLEARWELL_DB_NAME"`
	LegacySSLMode  string `envconfig:"CLEARWELL_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"CLEARWELL_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"CLEARWELL_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CLEARWELL_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"CLEARWELL_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"CLEARWELL_REDIS_URL" required:"true"`
	Address      string        `envconfig:"CLEARWELL_REDIS_ADDR"`
	Password     string        `envconfig:"CLEARWELL_REDIS_PASSWORD"`
	DB           int           `envconfig:"CLEARWELL_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"CLEARWELL_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"CLEARWELL_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"CLEARWELL_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"CLEARWELL_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"CLEARWELL_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"CLEARWELL_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"CLEARWELL_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"CLEARWELL_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"CLEARWELL_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"CLEARWELL_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"CLEARWELL_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"CLEARWELL_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"CLEARWELL_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"CLEARWELL_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"CLEARWELL_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"CLEARWELL_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"CLEARWELL_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"CLEARWELL_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"CLEARWELL_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"CLEARWELL_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"CLEARWELL_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"CLEARWELL_AUTO_MIGRATE" default:"false"`
}

type CatalogConfig struct {
	RandomItemSampleSize     int `envconfig:"CLEARWELL_CATALOG_RANDOM_ITEM_SAMPLE" default:"10"`
	RandomLocationSampleSize int `envconfig:"CLEARWELL_CATALOG_RANDOM_LOCATION_SAMPLE" default:"5"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
