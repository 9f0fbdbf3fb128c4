package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_Overrides(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeConfigFile(t, `{
		"endpoint_addr_http": ":9999",
		"database_dsn": "postgres://json/db",
		"secret_key": "json-secret",
		"bcrypt_cost": 8,
		"token_ttl": "45m"
	}`)

	os.Args = []string{"test", "-c", path}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, c.EndpointAddrHTTP, ":9999")
	assert.Equal(t, c.DatabaseDSN, "postgres://json/db")
	assert.Equal(t, c.SecretKey, "json-secret")
	assert.Equal(t, c.BcryptCost, 8)
	assert.Equal(t, c.TokenTTL, 45*time.Minute)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeConfigFile(t, `{"secret_key": "only-this"}`)

	os.Args = []string{"test", "-c", path}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, c.SecretKey, "only-this")
	assert.Equal(t, c.EndpointAddrHTTP, ":3000")
	assert.Equal(t, c.BcryptCost, 12)
}

func TestParseJson_NoFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"test"}

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, c.SecretKey, "secret")
}
