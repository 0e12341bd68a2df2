package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourceDatabase = "database"
	SourceCMS      = "cms"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port        string
	Environment string

	ContentSource string

	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	CMSBaseURL string
	CMSToken   string
	CMSTimeout time.Duration

	WebhookSecret string
	AdminToken    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	AMQPURL string

	SiteProfile string
}

// LoadConfig reads the environment, loading .env first when present. A
// missing .env is not an error; a malformed one is returned alongside the
// config built from the remaining environment so the caller can warn.
func LoadConfig() (*Config, error) {
	var envErr error
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		envErr = err
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "production"),

		ContentSource: getEnv("CONTENT_SOURCE", SourceDatabase),

		DBDriver:   getEnv("DB_DRIVER", DriverSQLite),
		DBPath:     getEnv("DB_PATH", "./buildpro.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "buildpro"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		CMSBaseURL: getEnv("CMS_BASE_URL", ""),
		CMSToken:   getEnv("CMS_TOKEN", ""),
		CMSTimeout: getEnvDuration("CMS_TIMEOUT", 10*time.Second),

		WebhookSecret: getEnv("WEBHOOK_SECRET", ""),
		AdminToken:    getEnv("ADMIN_TOKEN", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CacheTTL:      getEnvDuration("CACHE_TTL", 5*time.Minute),

		AMQPURL: getEnv("AMQP_URL", ""),

		SiteProfile: getEnv("SITE_PROFILE", ""),
	}, envErr
}

func (c *Config) Development() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
