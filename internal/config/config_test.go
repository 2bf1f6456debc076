package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/conf"
	"multisig-decoder-sol/internal/logic/core"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ixdecode.yaml")
	content := `
logger:
  Level: debug
Network: devnet
DecimalScale: [9, 6]
MintLookup:
  Enabled: true
  RedisAddr: 127.0.0.1:6379
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var c Config
	require.NoError(t, conf.Load(path, &c))

	assert.Equal(t, "debug", c.Logger.Level)
	assert.Equal(t, "console", c.Logger.Format)
	assert.True(t, c.MintLookup.Enabled)
	assert.Equal(t, 5000, c.MintLookup.TimeoutMs)
	assert.Equal(t, 86400, c.MintLookup.CacheTTLSec)
	assert.Equal(t, core.DecimalScale{9, 6, 6, 6}, c.DefaultScale())

	n, err := c.CurrentNetwork()
	require.NoError(t, err)
	assert.Equal(t, "Devnet", n.Label)
	assert.Equal(t, "https://explorer.solana.com/address/abc?cluster=devnet", n.ExplorerAccountURL("abc"))
}

func TestCurrentNetworkUnknown(t *testing.T) {
	c := Config{Network: "testnet"}
	_, err := c.CurrentNetwork()
	assert.Error(t, err)

	mainnet := Config{Network: "mainnet"}
	n, err := mainnet.CurrentNetwork()
	require.NoError(t, err)
	assert.Equal(t, "https://explorer.solana.com/address/abc", n.ExplorerAccountURL("abc"))
}
