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
	JWT          JWTConfig
	Blob         BlobConfig
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
	Env          string `envconfig:"GAMESHOP_APP_ENV" default:"dev"`
	Port         string `envconfig:"GAMESHOP_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"GAMESHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GAMESHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GAMESHOP_DB_DSN"`
	Driver string `envconfig:"GAMESHOP_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"GAMESHOP_DB_HOST"`
	LegacyPort     int    `envconfig:"GAMESHOP_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"GAMESHOP_DB_USER"`
	LegacyPassword string `envconfig:"GAMESHOP_DB_PASSWORD"`
	LegacyName     string `envconfig:"GAMESHOP_DB_NAME"`
	LegacySSLMode  string `envconfig:"GAMESHOP_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GAMESHOP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GAMESHOP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GAMESHOP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GAMESHOP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GAMESHOP_REDIS_URL"`
	Address      string        `envconfig:"GAMESHOP_REDIS_ADDR"`
	Password     string        `envconfig:"GAMESHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"GAMESHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GAMESHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GAMESHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GAMESHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GAMESHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GAMESHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all. The API
// runs without redis; idempotency replay is simply skipped.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"GAMESHOP_JWT_SECRET"`
	Issuer            string `envconfig:"GAMESHOP_JWT_ISSUER" default:"gameshop"`
	ExpirationMinutes int    `envconfig:"GAMESHOP_JWT_EXPIRATION_MINUTES" default:"60"`
}

type BlobConfig struct {
	Root        string `envconfig:"GAMESHOP_BLOB_ROOT" default:"public"`
	MaxUploadMB int    `envconfig:"GAMESHOP_MAX_UPLOAD_MB" default:"20"`
}

// MaxUploadBytes returns the multipart memory/size cap in bytes.
func (b BlobConfig) MaxUploadBytes() int64 {
	return int64(b.MaxUploadMB) << 20
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"GAMESHOP_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"GAMESHOP_AUTO_MIGRATE" default:"false"`
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
