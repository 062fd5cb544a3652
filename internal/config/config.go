// internal/config/config.go
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	Port string
	DB   DBConfig

	JWTSecret    string
	JWTExpireMin int
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Load reads configuration from the environment. JWT_SECRET has no default:
// tokens signed with a guessable secret are forgeable, so startup fails instead.
func Load() Config {
	cfg := Config{
		Port: getEnv("PORT", "8080"),
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "smpj"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpireMin: getEnvAsInt("JWT_EXPIRE_MIN", 480),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	return cfg
}

func (d DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

func getEnv(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}

func getEnvAsInt(key string, def int) int {
	value := os.Getenv(key)
	if value == "" {
		return def
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid integer for %s, fallback to %d", key, def)
		return def
	}
	return parsed
}
