// Package config carga la configuración del API desde env (y .env si existe).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

type Config struct {
	Port      string `validate:"required,numeric"`
	AppName   string
	LogLevel  string `validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat string `validate:"omitempty,oneof=text json"`

	StoreDriver string `validate:"required,oneof=memory postgres sqlite"`
	DBDSN       string `validate:"required_if=StoreDriver postgres"`
	SQLitePath  string `validate:"required_if=StoreDriver sqlite"`

	AssetBaseURL     string `validate:"omitempty,url"`
	AssetS3Bucket    string
	AssetS3Region    string `validate:"required_with=AssetS3Bucket"`
	AssetS3Endpoint  string `validate:"omitempty,url"`
	AssetS3Prefix    string
	AssetS3PathStyle bool
	AssetS3Expiry    time.Duration

	AuthJWTSecret string
	AuthJWTIssuer string
	OdinBaseURL   string `validate:"omitempty,url"`
	OdinAPIKey    string `validate:"required_with=OdinBaseURL"`

	RateLimitRPS   float64 `validate:"gte=0"`
	RateLimitBurst int     `validate:"gte=0"`
}

// Load lee .env/.env.local (si existen) y luego el entorno.
// STORE_DRIVER vacío => memory: las adopciones no sobreviven un reinicio salvo opt-in explícito.
func Load() (Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
	return FromLookup(os.LookupEnv)
}

// FromLookup permite tests sin tocar el entorno del proceso.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	var errs []error
	num := func(key string, def float64) float64 {
		raw := get(key, "")
		if raw == "" {
			return def
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return def
		}
		return f
	}
	boolean := func(key string) bool {
		raw := get(key, "")
		if raw == "" {
			return false
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return b
	}
	dur := func(key string, def time.Duration) time.Duration {
		raw := get(key, "")
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
			return def
		}
		return d
	}

	c := Config{
		Port:      get("PORT", "8080"),
		AppName:   get("APP_NAME", "pet-explorer"),
		LogLevel:  strings.ToLower(get("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(get("LOG_FORMAT", "text")),

		DBDSN:      get("DB_DSN", ""),
		SQLitePath: get("SQLITE_PATH", "data/adoptions.db"),

		AssetBaseURL:     get("ASSET_BASE_URL", ""),
		AssetS3Bucket:    get("ASSET_S3_BUCKET", ""),
		AssetS3Region:    get("ASSET_S3_REGION", ""),
		AssetS3Endpoint:  get("ASSET_S3_ENDPOINT", ""),
		AssetS3Prefix:    get("ASSET_S3_PREFIX", ""),
		AssetS3PathStyle: boolean("ASSET_S3_PATH_STYLE"),
		AssetS3Expiry:    dur("ASSET_S3_EXPIRY", 15*time.Minute),

		AuthJWTSecret: get("AUTH_JWT_SECRET", ""),
		AuthJWTIssuer: get("AUTH_JWT_ISSUER", ""),
		OdinBaseURL:   get("ODIN_BASE_URL", ""),
		OdinAPIKey:    get("ODIN_API_KEY", ""),

		RateLimitRPS:   num("RATE_LIMIT_RPS", 5),
		RateLimitBurst: int(num("RATE_LIMIT_BURST", 10)),
	}

	c.StoreDriver = strings.ToLower(get("STORE_DRIVER", StoreMemory))

	if len(errs) > 0 {
		return Config{}, errors.Join(errs...)
	}
	if err := validator.New().Struct(c); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Addr para http.Server.
func (c Config) Addr() string { return ":" + c.Port }

// RateLimitEnabled: RATE_LIMIT_RPS=0 lo desactiva.
func (c Config) RateLimitEnabled() bool { return c.RateLimitRPS > 0 }
