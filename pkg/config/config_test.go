package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadAPIServer_Defaults(t *testing.T) {
	path := writeConfig(t, `
database:
  user: party
  password: secret
`)

	cfg, err := LoadAPIServer(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "party_index", cfg.Database.Database)
	assert.Equal(t, SearchSourceDB, cfg.Search.Source)
	assert.Equal(t, 20, cfg.Search.DefaultLimit)
	assert.Equal(t, 100, cfg.Search.MaxLimit)
	assert.False(t, cfg.Linker.Enabled)
	assert.Equal(t, 100, cfg.Linker.BatchSize)
	assert.True(t, cfg.Monitoring.Enabled)
}

func TestLoadAPIServer_NetworksAndEthereum(t *testing.T) {
	path := writeConfig(t, `
networks:
  "8453": base-mainnet
  "31337": anvil
ethereum:
  networks:
    "1":
      rpc_url: http://localhost:8545
    "8453":
      rpc_url: http://localhost:8546
      dial_timeout: 3s
linker:
  enabled: true
  interval: 1m
`)

	cfg, err := LoadAPIServer(path)
	require.NoError(t, err)

	overrides, err := cfg.NetworkOverrides()
	require.NoError(t, err)
	assert.Equal(t, map[int64]string{8453: "base-mainnet", 31337: "anvil"}, overrides)

	byChain, err := cfg.Ethereum.ByChainID()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8546", byChain[8453].RPCURL)
	assert.Equal(t, 3*time.Second, byChain[8453].DialTimeout)
	assert.Equal(t, 15*time.Second, byChain[1].DialTimeout, "unset dial_timeout takes the tag default")
	assert.Equal(t, []int64{1, 8453}, cfg.Ethereum.ChainIDs())
	assert.Equal(t, time.Minute, cfg.Linker.Interval)
}

func TestLoadAPIServer_RemoteSourceRequiresBaseURL(t *testing.T) {
	path := writeConfig(t, `
search:
  source: remote
`)

	_, err := LoadAPIServer(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indexer.base_url")
}

func TestLoadAPIServer_RejectsUnknownSource(t *testing.T) {
	path := writeConfig(t, `
search:
  source: graphql
`)

	_, err := LoadAPIServer(path)
	assert.Error(t, err)
}

func TestLoadAPIServer_RejectsBadChainID(t *testing.T) {
	path := writeConfig(t, `
networks:
  mainnet: mainnet
`)

	_, err := LoadAPIServer(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid chain id")
}

func TestLoadAPIServer_LinkerRequiresNetworks(t *testing.T) {
	path := writeConfig(t, `
linker:
  enabled: true
`)

	_, err := LoadAPIServer(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ethereum.networks")
}

func TestLoadAPIServer_MissingFile(t *testing.T) {
	_, err := LoadAPIServer(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
