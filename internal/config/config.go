// Package config handles environment configuration loading.
package config

import (
	"os"
	"strconv"
)

// Config holds all configuration values for the application.
type Config struct {
	Port          string
	Environment   string
	DBUrl         string
	JWTSecret     string
	RedisAddr     string
	RedisPassword string
	RedisDB       string
	OTLPEndpoint  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENV", "dev"),
		DBUrl:         getEnv("DB_URL", ""),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnv("REDIS_DB", "0"),
		OTLPEndpoint:  getEnv("OTLP_ENDPOINT", ""),
	}
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetRedisDBInt returns the Redis database index as an integer.
func (c *Config) GetRedisDBInt() int {
	db, err := strconv.Atoi(c.RedisDB)
	if err != nil {
		return 0
	}
	return db
}

// GetAddr returns the full address string for the server.
func (c *Config) GetAddr() string {
	return ":" + c.Port
}
