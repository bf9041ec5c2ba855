package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

// Config is the resolved runtime configuration shared by every command.
type Config struct {
	Network           string        `mapstructure:"network"`
	HorizonURL        string        `mapstructure:"horizon_url"`
	FriendbotURL      string        `mapstructure:"friendbot_url"`
	NetworkPassphrase string        `mapstructure:"network_passphrase"`
	BaseFee           int64         `mapstructure:"base_fee"`
	Timeout           time.Duration `mapstructure:"timeout"`
	TxTimeout         time.Duration `mapstructure:"tx_timeout"`
	Keystore          string        `mapstructure:"keystore"`

	configPath string
}

// iniNetworkSection mirrors Config for the [network] section of an .ini file.
type iniNetworkSection struct {
	Network           string `ini:"network"`
	HorizonURL        string `ini:"horizon_url"`
	FriendbotURL      string `ini:"friendbot_url"`
	NetworkPassphrase string `ini:"network_passphrase"`
	BaseFee           int64  `ini:"base_fee"`
	Timeout           string `ini:"timeout"`
	TxTimeout         string `ini:"tx_timeout"`
	Keystore          string `ini:"keystore"`
}

// Load resolves the configuration in priority order:
// 1. Network preset defaults (testnet unless selected otherwise)
// 2. Configuration file (yaml, toml or ini)
// 3. Environment variables (STELLARX_ prefix)
// A non-empty networkName comes from the --network flag and picks the preset.
func Load(path, networkName string) (*Config, error) {
	v := viper.New()

	// 1. Read the file first so a network key in it can pick the preset
	if path != "" {
		if err := loadConfigFile(v, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// 2. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 3. Preset defaults for the selected network
	if networkName == "" {
		networkName = v.GetString("network")
	}
	if networkName == "" {
		networkName = NetworkTestnet
	}
	networkName = strings.ToLower(networkName)
	preset, ok := NetworkPresets[networkName]
	if !ok {
		return nil, fmt.Errorf("unknown network %q (supported: %s)", networkName, strings.Join(NetworkNames(), ", "))
	}
	setDefaults(v, preset)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Network = networkName
	cfg.configPath = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Default returns the validated configuration of a named network with no
// file or environment overrides applied.
func Default(networkName string) *Config {
	preset := NetworkPresets[networkName]
	return &Config{
		Network:           networkName,
		HorizonURL:        preset.HorizonURL,
		FriendbotURL:      preset.FriendbotURL,
		NetworkPassphrase: preset.Passphrase,
		BaseFee:           DefaultBaseFee,
		Timeout:           DefaultTimeout,
		TxTimeout:         DefaultTxTimeout,
		Keystore:          DefaultKeystorePath,
	}
}

func setDefaults(v *viper.Viper, preset NetworkPreset) {
	v.SetDefault("network", NetworkTestnet)
	v.SetDefault("horizon_url", preset.HorizonURL)
	v.SetDefault("friendbot_url", preset.FriendbotURL)
	v.SetDefault("network_passphrase", preset.Passphrase)
	v.SetDefault("base_fee", DefaultBaseFee)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("tx_timeout", DefaultTxTimeout)
	v.SetDefault("keystore", DefaultKeystorePath)
}

func loadConfigFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist: %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ini":
		section, err := loadIniSection(path)
		if err != nil {
			return err
		}
		return v.MergeConfigMap(section)
	case ".yaml", ".yml", ".toml":
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported config file format: %s (supported: .yaml, .yml, .toml, .ini)", path)
	}
}

// loadIniSection reads the [network] section and keeps only the keys that are set.
func loadIniSection(path string) (map[string]interface{}, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var sec iniNetworkSection
	if err := file.Section("network").MapTo(&sec); err != nil {
		return nil, fmt.Errorf("failed to map [network] section of %s: %w", path, err)
	}

	out := map[string]interface{}{}
	setString := func(key, value string) {
		if value != "" {
			out[key] = value
		}
	}
	setString("network", sec.Network)
	setString("horizon_url", sec.HorizonURL)
	setString("friendbot_url", sec.FriendbotURL)
	setString("network_passphrase", sec.NetworkPassphrase)
	setString("timeout", sec.Timeout)
	setString("tx_timeout", sec.TxTimeout)
	setString("keystore", sec.Keystore)
	if sec.BaseFee != 0 {
		out["base_fee"] = sec.BaseFee
	}
	return out, nil
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if err := validateURL("horizon_url", c.HorizonURL); err != nil {
		return err
	}
	if c.FriendbotURL != "" {
		if err := validateURL("friendbot_url", c.FriendbotURL); err != nil {
			return err
		}
	}
	if c.NetworkPassphrase == "" {
		return fmt.Errorf("network_passphrase cannot be empty")
	}
	if c.BaseFee < DefaultBaseFee {
		return fmt.Errorf("base_fee must be at least %d stroops, got %d", DefaultBaseFee, c.BaseFee)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.TxTimeout < time.Second {
		return fmt.Errorf("tx_timeout must be at least 1s, got %s", c.TxTimeout)
	}
	if c.Keystore == "" {
		return fmt.Errorf("keystore path cannot be empty")
	}
	return nil
}

func validateURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid %s %q: scheme must be http or https", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid %s %q: missing host", name, raw)
	}
	return nil
}

// FriendbotEnabled reports whether the selected network has a faucet.
func (c *Config) FriendbotEnabled() bool {
	return c.FriendbotURL != ""
}

// ConfigPath returns the file the configuration was read from, if any.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// NetworkNames returns the supported network names, sorted.
func NetworkNames() []string {
	names := make([]string, 0, len(NetworkPresets))
	for name := range NetworkPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
