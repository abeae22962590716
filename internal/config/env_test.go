package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "sign-key")
	t.Setenv("APP_TOKEN_ISSUER", "securechat")
	t.Setenv("APP_TOKEN_DURATION", "1h")
	t.Setenv("APP_SEARCH_HASH_KEY", "search-key")
	t.Setenv("APP_EXPIRATION_OPTIONS_SECONDS", "0,3600,86400")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/securechat")
	t.Setenv("STORAGE_KEYS_PATH", "/var/lib/securechat/keys.db")
	t.Setenv("STORAGE_KEYS_PASSPHRASE", "passphrase")
	t.Setenv("STORAGE_KEYS_SALT", "salt")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("UPLOAD_ALLOWED_MIME_TYPES", "application/pdf,image/png,image/jpeg")
	t.Setenv("UPLOAD_MAX_FILE_SIZE_BYTES", "10485760")
	t.Setenv("UPLOAD_UNKNOWN_SCAN_POLICY", "fail-closed")
	t.Setenv("SCANNER_URL", "http://clamav:3310")
	t.Setenv("SCANNER_TIMEOUT", "10s")
	t.Setenv("WORKERS_PURGE_INTERVAL", "1m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "securechat", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "search-key", cfg.App.SearchHashKey)
	assert.Equal(t, []int64{0, 3600, 86400}, cfg.App.ExpirationOptionsSeconds)
	assert.Equal(t, "postgres://localhost:5432/securechat", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/securechat/keys.db", cfg.Storage.Keys.Path)
	assert.Equal(t, "passphrase", cfg.Storage.Keys.Passphrase)
	assert.Equal(t, "salt", cfg.Storage.Keys.Salt)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"application/pdf", "image/png", "image/jpeg"}, cfg.Upload.AllowedMimeTypes)
	assert.Equal(t, int64(10485760), cfg.Upload.MaxFileSizeBytes)
	assert.Equal(t, PolicyFailClosed, cfg.Upload.UnknownScanPolicy)
	assert.Equal(t, "http://clamav:3310", cfg.Scanner.URL)
	assert.Equal(t, 10*time.Second, cfg.Scanner.Timeout)
	assert.Equal(t, time.Minute, cfg.Workers.PurgeInterval)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.App.TokenSignKey)
	assert.Empty(t, cfg.Upload.AllowedMimeTypes)
}
