package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Search sources
const (
	SearchSourceDB     = "db"
	SearchSourceRemote = "remote"
)

// APIServerConfig represents the party search API server configuration
type APIServerConfig struct {
	Server     ServerConfig      `mapstructure:"server"`
	Database   DatabaseConfig    `mapstructure:"database"`
	Logging    LoggingConfig     `mapstructure:"logging"`
	Search     SearchConfig      `mapstructure:"search"`
	Indexer    IndexerConfig     `mapstructure:"indexer"`
	Ethereum   EthereumConfig    `mapstructure:"ethereum"`
	Networks   map[string]string `mapstructure:"networks"`
	Linker     LinkerConfig      `mapstructure:"linker"`
	JWKS       JWKSConfig        `mapstructure:"jwks"`
	Monitoring MonitoringConfig  `mapstructure:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"gt=0,lte=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=json console"`
	OutputPath string `mapstructure:"output_path"`
}

// SearchConfig selects the search data source and result limits
type SearchConfig struct {
	Source       string `mapstructure:"source" validate:"oneof=db remote"`
	DefaultLimit int    `mapstructure:"default_limit" validate:"gt=0"`
	MaxLimit     int    `mapstructure:"max_limit" validate:"gtefield=DefaultLimit"`
}

// IndexerConfig contains settings for the remote party indexer API
type IndexerConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// EthereumConfig contains per-network JSON-RPC endpoints keyed by chain id
type EthereumConfig struct {
	Networks    map[string]EthereumNetworkConfig `mapstructure:"networks"`
	CallTimeout time.Duration                    `mapstructure:"call_timeout"`
}

// EthereumNetworkConfig contains the RPC endpoint of one network.
// Entries live under a map keyed by chain id, which viper cannot default,
// so their defaults come from the `default` tags.
type EthereumNetworkConfig struct {
	RPCURL      string        `mapstructure:"rpc_url"`
	DialTimeout time.Duration `mapstructure:"dial_timeout" default:"15s"`
}

// LinkerConfig contains settings for the crowdfund link backfill worker
type LinkerConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
}

// JWKSConfig contains JWKS configuration for JWT validation
type JWKSConfig struct {
	URL    string `mapstructure:"url"`
	Issuer string `mapstructure:"issuer"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadAPIServer loads API server configuration from file
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setAPIServerDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config APIServerConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := defaults.Set(&config); err != nil {
		return nil, fmt.Errorf("failed to apply config defaults: %w", err)
	}

	if err := validateAPIServer(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setAPIServerDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8081)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.request_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.database", "party_index")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")

	// Search defaults
	v.SetDefault("search.source", SearchSourceDB)
	v.SetDefault("search.default_limit", 20)
	v.SetDefault("search.max_limit", 100)

	// Indexer defaults
	v.SetDefault("indexer.timeout", "10s")

	// Ethereum defaults
	v.SetDefault("ethereum.call_timeout", "10s")

	// Linker defaults
	v.SetDefault("linker.enabled", false)
	v.SetDefault("linker.interval", "5m")
	v.SetDefault("linker.batch_size", 100)

	// Monitoring defaults
	v.SetDefault("monitoring.enabled", true)
}

func validateAPIServer(config *APIServerConfig) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return err
	}

	switch config.Search.Source {
	case SearchSourceDB:
		if config.Database.Host == "" {
			return fmt.Errorf("database.host is required")
		}
	case SearchSourceRemote:
		if config.Indexer.BaseURL == "" {
			return fmt.Errorf("indexer.base_url is required when search.source is %q", SearchSourceRemote)
		}
	}

	if config.Linker.Enabled {
		if config.Database.Host == "" {
			return fmt.Errorf("database.host is required when linker is enabled")
		}
		if len(config.Ethereum.Networks) == 0 {
			return fmt.Errorf("ethereum.networks is required when linker is enabled")
		}
		if config.Linker.Interval <= 0 {
			return fmt.Errorf("linker.interval must be positive")
		}
		if config.Linker.BatchSize <= 0 {
			return fmt.Errorf("linker.batch_size must be positive")
		}
	}

	if _, err := config.NetworkOverrides(); err != nil {
		return err
	}
	if _, err := config.Ethereum.ByChainID(); err != nil {
		return err
	}

	return nil
}

// NetworkOverrides returns the configured network name overrides keyed by chain id
func (c *APIServerConfig) NetworkOverrides() (map[int64]string, error) {
	out := make(map[int64]string, len(c.Networks))
	for key, name := range c.Networks {
		chainID, err := parseChainID(key)
		if err != nil {
			return nil, fmt.Errorf("networks: %w", err)
		}
		out[chainID] = name
	}
	return out, nil
}

// ByChainID returns the configured networks keyed by chain id
func (c *EthereumConfig) ByChainID() (map[int64]EthereumNetworkConfig, error) {
	out := make(map[int64]EthereumNetworkConfig, len(c.Networks))
	for key, network := range c.Networks {
		chainID, err := parseChainID(key)
		if err != nil {
			return nil, fmt.Errorf("ethereum.networks: %w", err)
		}
		if network.RPCURL == "" {
			return nil, fmt.Errorf("ethereum.networks.%s.rpc_url is required", key)
		}
		if network.DialTimeout <= 0 {
			return nil, fmt.Errorf("ethereum.networks.%s.dial_timeout must be positive", key)
		}
		out[chainID] = network
	}
	return out, nil
}

// ChainIDs returns the configured chain ids in ascending order
func (c *EthereumConfig) ChainIDs() []int64 {
	networks, err := c.ByChainID()
	if err != nil {
		return nil
	}
	ids := make([]int64, 0, len(networks))
	for id := range networks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func parseChainID(key string) (int64, error) {
	chainID, err := strconv.ParseInt(strings.TrimSpace(key), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid chain id %q: %w", key, err)
	}
	if chainID <= 0 {
		return 0, errors.New("chain id must be positive")
	}
	return chainID, nil
}
