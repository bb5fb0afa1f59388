package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	c, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.Addr())
	assert.Equal(t, StoreMemory, c.StoreDriver)
	assert.Equal(t, "pet-explorer", c.AppName)
	assert.Equal(t, 15*time.Minute, c.AssetS3Expiry)
	assert.True(t, c.RateLimitEnabled())
}

func TestFromLookup_SQLStoresAreOptIn(t *testing.T) {
	c, err := FromLookup(lookupFrom(map[string]string{"DB_DSN": "postgres://u:p@localhost/db"}))
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, c.StoreDriver, "DB_DSN alone must not enable persistence")

	c, err = FromLookup(lookupFrom(map[string]string{
		"STORE_DRIVER": "postgres",
		"DB_DSN":       "postgres://u:p@localhost/db",
	}))
	require.NoError(t, err)
	assert.Equal(t, StorePostgres, c.StoreDriver)
}

func TestFromLookup_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":   {"STORE_DRIVER": "mongo"},
		"postgres no dsn":  {"STORE_DRIVER": "postgres"},
		"bad port":         {"PORT": "http"},
		"bad log format":   {"LOG_FORMAT": "xml"},
		"bucket no region": {"ASSET_S3_BUCKET": "pets"},
		"odin no key":      {"ODIN_BASE_URL": "https://odin.local"},
		"bad rps":          {"RATE_LIMIT_RPS": "fast"},
		"bad path style":   {"ASSET_S3_PATH_STYLE": "maybe"},
		"negative burst":   {"RATE_LIMIT_BURST": "-1"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromLookup(lookupFrom(env))
			assert.Error(t, err)
		})
	}
}

func TestFromLookup_SQLiteAndS3(t *testing.T) {
	c, err := FromLookup(lookupFrom(map[string]string{
		"STORE_DRIVER":        "SQLite",
		"SQLITE_PATH":         "/tmp/x.db",
		"ASSET_S3_BUCKET":     "pets",
		"ASSET_S3_REGION":     "us-east-1",
		"ASSET_S3_ENDPOINT":   "http://localhost:9000",
		"ASSET_S3_PATH_STYLE": "true",
		"RATE_LIMIT_RPS":      "0",
	}))
	require.NoError(t, err)
	assert.Equal(t, StoreSQLite, c.StoreDriver)
	assert.True(t, c.AssetS3PathStyle)
	assert.False(t, c.RateLimitEnabled())
}
