package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string // "postgres" or "sqlite"
	DBDSN    string

	ServerPort    string
	SessionSecret string

	// ServiceTokenSecret signs the bearer tokens used by the automation API.
	ServiceTokenSecret string

	// RedisAddr enables the public-form rate limiter when set.
	RedisAddr string

	// AdsAPIURL enables the real campaign applier when set.
	AdsAPIURL string

	AutoApplyEnabled bool

	AdminEmail    string
	AdminPassword string

	Env string // "production" or anything else for development
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver:           os.Getenv("DB_DRIVER"),
		DBDSN:              os.Getenv("DB_DSN"),
		ServerPort:         os.Getenv("SERVER_PORT"),
		SessionSecret:      os.Getenv("SESSION_SECRET"),
		ServiceTokenSecret: os.Getenv("SERVICE_TOKEN_SECRET"),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		AdsAPIURL:          os.Getenv("ADS_API_URL"),
		AutoApplyEnabled:   os.Getenv("AUTO_APPLY_ENABLED") == "true",
		AdminEmail:         os.Getenv("ADMIN_EMAIL"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
		Env:                os.Getenv("APP_ENV"),
	}

	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN is not set")
	}
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is not set")
	}
	if cfg.ServiceTokenSecret == "" {
		log.Fatal("SERVICE_TOKEN_SECRET is not set")
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = "postgres"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}

	return cfg
}
