package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://u:p@localhost/snapfest")
	t.Setenv("JWT_KEY", "k")
	t.Setenv("S3_ENDPOINT", "s3.amazonaws.com")

	cfg, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Addr)
	require.Equal(t, "snapfest-events", cfg.S3Bucket)
	require.True(t, cfg.S3Secure)
}

func TestFromEnv_S3Insecure(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "postgres://u:p@localhost/snapfest")
	t.Setenv("JWT_KEY", "k")
	t.Setenv("S3_ENDPOINT", "minio:9000")

	for val, secure := range map[string]bool{
		"true":  false,
		"1":     false,
		"false": true,
		"":      true,
		"junk":  true,
	} {
		t.Setenv("S3_INSECURE", val)
		cfg, err := FromEnv()
		require.NoError(t, err)
		require.Equal(t, secure, cfg.S3Secure, "S3_INSECURE=%q", val)
	}
}

func TestFromEnv_MissingRequired(t *testing.T) {
	t.Setenv("POSTGRES_DSN", "")
	t.Setenv("JWT_KEY", "k")
	t.Setenv("S3_ENDPOINT", "s3.amazonaws.com")

	_, err := FromEnv()
	require.Error(t, err)
}
