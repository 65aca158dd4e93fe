package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	App          AppConfig          `mapstructure:"app"`
	Server       ServerConfig       `mapstructure:"server"`
	Logger       LoggerConfig       `mapstructure:"logger"`
	Networks     NetworksConfig     `mapstructure:"networks"`
	Registry     RegistryConfig     `mapstructure:"registry"`
	Chainlist    ChainlistConfig    `mapstructure:"chainlist"`
	ExplorerKeys ExplorerKeysConfig `mapstructure:"explorer_keys"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// NetworksConfig lists the networks active for this deployment.
type NetworksConfig struct {
	Targets []int64 `mapstructure:"targets"`
}

// RegistryConfig holds settings for the built-in chain registry.
type RegistryConfig struct {
	ExtraChainsFile string `mapstructure:"extra_chains_file"`
}

// ChainlistConfig holds configuration for the optional Chainlist import.
type ChainlistConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ExplorerKeysConfig holds the block explorer API keys, one per explorer integration.
type ExplorerKeysConfig struct {
	Mainnet  string `mapstructure:"mainnet"`
	Optimism string `mapstructure:"optimism"`
	Polygon  string `mapstructure:"polygon"`
	Arbitrum string `mapstructure:"arbitrum"`
	ZkSync   string `mapstructure:"zksync"`
	Base     string `mapstructure:"base"`
	Scroll   string `mapstructure:"scroll"`
}

// explorerKeyEnv maps explorer key settings to the environment variables the frontend build exports.
var explorerKeyEnv = map[string]string{
	"explorer_keys.mainnet":  "NEXT_PUBLIC_ETHERSCAN_API_KEY",
	"explorer_keys.optimism": "NEXT_PUBLIC_OPTIMISM_ETHERSCAN_API_KEY",
	"explorer_keys.polygon":  "NEXT_PUBLIC_POLYGON_ETHERSCAN_API_KEY",
	"explorer_keys.arbitrum": "NEXT_PUBLIC_ARBITRUM_ETHERSCAN_API_KEY",
	"explorer_keys.zksync":   "NEXT_PUBLIC_ZKSYNC_ETHERSCAN_API_KEY",
	"explorer_keys.base":     "NEXT_PUBLIC_BASE_ETHERSCAN_API_KEY",
	"explorer_keys.scroll":   "NEXT_PUBLIC_SCROLL_ETHERSCAN_API_KEY",
}

// Load reads configuration from file and environment variables.
// Explorer API keys are resolved here, once, and never re-read.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "network-metadata")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("networks.targets", []int64{31337})
	v.SetDefault("registry.extra_chains_file", "")
	v.SetDefault("chainlist.enabled", false)
	v.SetDefault("chainlist.url", "https://chainid.network/chains.json")
	v.SetDefault("chainlist.timeout", "15s")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		fmt.Printf("Warning: Config file not found in %s or '.', using defaults/env vars\n", configPath)
	}

	v.SetEnvPrefix("NETWORK_METADATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range explorerKeyEnv {
		v.SetDefault(key, "")
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env var %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c ChainlistConfig) GetTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 15 * time.Second
	}
	return c.Timeout
}
