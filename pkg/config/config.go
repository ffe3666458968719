// Package config loads process-launcher settings from the environment and an
// optional config file.
//
// Every key can be set through a PRL_-prefixed environment variable, nested
// keys joined by underscores (log.level -> PRL_LOG_LEVEL).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib/logging"
)

const (
	EnvPrefix      = "PRL"
	DefaultAddress = "localhost:50051"
)

// Config is shared by the server and the CLI.
type Config struct {
	Address   string `mapstructure:"address"`
	TLSKey    string `mapstructure:"tls_key"`
	TLSCert   string `mapstructure:"tls_cert"`
	CATLSCert string `mapstructure:"ca_tls_cert"`

	// BaseDir holds per-process work directories; empty means a fresh temp dir.
	BaseDir     string        `mapstructure:"base_dir"`
	ReapOrphans bool          `mapstructure:"reap_orphans"`
	StopTimeout time.Duration `mapstructure:"stop_timeout"`

	Log logging.Config `mapstructure:"log"`
}

type loaderConfig struct {
	configFile string
}

type Option func(*loaderConfig)

// WithConfigFile reads path (any format viper understands) before applying
// environment overrides.
func WithConfigFile(path string) Option {
	return func(lc *loaderConfig) { lc.configFile = path }
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("address", DefaultAddress)
	v.SetDefault("tls_key", "")
	v.SetDefault("tls_cert", "")
	v.SetDefault("ca_tls_cert", "")
	v.SetDefault("base_dir", "")
	v.SetDefault("reap_orphans", false)
	v.SetDefault("stop_timeout", time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatConsole)
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.no_color", false)
	v.SetDefault("log.timestamp", true)
}

// Load resolves the configuration.
func Load(opts ...Option) (*Config, error) {
	var lc loaderConfig
	for _, opt := range opts {
		opt(&lc)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if lc.configFile != "" {
		v.SetConfigFile(lc.configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", lc.configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if strings.TrimSpace(cfg.Address) == "" {
		cfg.Address = DefaultAddress
	}
	if err := cfg.Log.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateTLS checks that the PEM material needed for mTLS is present.
func (c *Config) ValidateTLS() error {
	var missing []string
	if strings.TrimSpace(c.TLSKey) == "" {
		missing = append(missing, EnvPrefix+"_TLS_KEY")
	}
	if strings.TrimSpace(c.TLSCert) == "" {
		missing = append(missing, EnvPrefix+"_TLS_CERT")
	}
	if strings.TrimSpace(c.CATLSCert) == "" {
		missing = append(missing, EnvPrefix+"_CA_TLS_CERT")
	}
	if len(missing) > 0 {
		return errors.New("missing TLS configuration: " + strings.Join(missing, ", "))
	}
	return nil
}
