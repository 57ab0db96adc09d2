// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config collects everything the server binary needs to start.
type Config struct {
	Addr        string
	DatabaseDSN string
	JWTKey      string

	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3Secure    bool

	AllowedOrigins []string
}

// FromEnv reads configuration from environment variables. Call
// godotenv.Load first if a .env file should be honored.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:        getenv("ADDR", ":8080"),
		DatabaseDSN: os.Getenv("POSTGRES_DSN"),
		JWTKey:      os.Getenv("JWT_KEY"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    getenv("S3_BUCKET", "snapfest-events"),
		S3Secure:    !envBool("S3_INSECURE"),
		AllowedOrigins: strings.Split(
			getenv("ALLOWED_ORIGINS", "http://localhost:5173"), ","),
	}

	for name, v := range map[string]string{
		"POSTGRES_DSN": cfg.DatabaseDSN,
		"JWT_KEY":      cfg.JWTKey,
		"S3_ENDPOINT":  cfg.S3Endpoint,
	} {
		if v == "" {
			return Config{}, fmt.Errorf("missing required env %s", name)
		}
	}
	return cfg, nil
}

func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// envBool treats unset, empty and unparsable values as false.
func envBool(name string) bool {
	b, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && b
}
