package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// Config holds tool-wide defaults. Every value can be overridden by the
// config file or an OPATCH_DIFF_* environment variable; flags win last.
type Config struct {
	LogLevel             string `mapstructure:"log_level"`
	LogFormat            string `mapstructure:"log_format"`
	Short                bool   `mapstructure:"short"`
	OratabPath           string `mapstructure:"oratab_path"`
	OPatchTimeoutSeconds int    `mapstructure:"opatch_timeout_seconds"`
}

func Default() *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            "text",
		OratabPath:           "/etc/oratab",
		OPatchTimeoutSeconds: 600,
	}
}

func Load(cfgFile string) (*Config, error) {
	cfg := Default()

	v := viper.New()

	// Defaults must be registered with viper, not only carried in the
	// struct: AutomaticEnv resolves env vars only for keys viper knows.
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_format", cfg.LogFormat)
	v.SetDefault("short", cfg.Short)
	v.SetDefault("oratab_path", cfg.OratabPath)
	v.SetDefault("opatch_timeout_seconds", cfg.OPatchTimeoutSeconds)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("opatch-diff")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("OPATCH_DIFF")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Timeout returns the opatch invocation timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.OPatchTimeoutSeconds) * time.Second
}

func configDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("ProgramData"), "opatch-diff")
	case "darwin":
		return "/Library/Application Support/opatch-diff"
	default:
		return "/etc/opatch-diff"
	}
}
