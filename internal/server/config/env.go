package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. An optional
// .env file in the working directory is loaded first; a missing file is not
// an error. Real environment variables win over .env values (godotenv does
// not override variables that are already set).
//
// Recognized variables:
//
//	ADDRESS           HTTP bind address (e.g., ":8080")
//	DATABASE_DSN      PostgreSQL DSN; empty selects the in-memory store
//	SECRET_KEY        JWT HMAC secret
//	ACCESS_TOKEN_TTL  access token validity, time.ParseDuration format
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
}
