package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "WALLET_RISK"

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Db         DbConfig         `mapstructure:"db"`
	Prediction PredictionConfig `mapstructure:"prediction"`
	Chain      ChainConfig      `mapstructure:"chain"`
	Check      CheckConfig      `mapstructure:"check"`
	Poller     PollerConfig     `mapstructure:"poller"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Server.Validate(); err != nil {
		return err
	}

	if err := cfg.Db.Validate(); err != nil {
		return err
	}

	if err := cfg.Prediction.Validate(); err != nil {
		return err
	}

	if err := cfg.Chain.Validate(); err != nil {
		return err
	}

	if err := cfg.Check.Validate(); err != nil {
		return err
	}

	if err := cfg.Poller.Validate(); err != nil {
		return err
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	return nil
}

// New returns a fully parsed Config object from a given file path.
// Any value can be overridden with environment variable, e.g. db.address -> WALLET_RISK_DB_ADDRESS
func New(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(cfgFile)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", defaultServerHost)
	v.SetDefault("server.port", defaultServerPort)
	v.SetDefault("server.read-timeout", defaultServerTimeout)
	v.SetDefault("server.write-timeout", defaultServerTimeout)
	v.SetDefault("server.log-level", defaultLogLevel)
	// empty defaults make these keys visible to AutomaticEnv during Unmarshal
	v.SetDefault("db.username", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.db-name", "")
	v.SetDefault("db.address", "")
	v.SetDefault("chain.rpc-url", "")
	v.SetDefault("prediction.url", defaultPredictionURL)
	v.SetDefault("prediction.max-retry-times", defaultPredictionMaxRetryTimes)
	v.SetDefault("prediction.retry-interval", defaultPredictionRetryInterval)
	v.SetDefault("chain.stats-mode", defaultStatsMode)
	v.SetDefault("chain.stats-method", defaultStatsMethod)
	v.SetDefault("chain.timeout", defaultChainTimeout)
	v.SetDefault("check.reconcile-by", defaultReconcileBy)
	v.SetDefault("poller.pending-checks-interval", defaultPendingChecksInterval)
	v.SetDefault("metrics.host", defaultMetricsHost)
	v.SetDefault("metrics.port", defaultMetricsPort)
}
