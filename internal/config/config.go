package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all steerage configuration.
type Config struct {
	Input    string       `mapstructure:"input" yaml:"input"`
	LogLevel string       `mapstructure:"log_level" yaml:"log_level"`
	JSONLogs bool         `mapstructure:"json_logs" yaml:"json_logs"`
	Loader   LoaderConfig `mapstructure:"loader" yaml:"loader"`
	Output   OutputConfig `mapstructure:"output" yaml:"output"`
}

// LoaderConfig holds dataset ingestion settings.
type LoaderConfig struct {
	MinColumns int `mapstructure:"min_columns" yaml:"min_columns"`
	CacheSize  int `mapstructure:"cache_size" yaml:"cache_size"`
}

// OutputConfig holds report destination settings.
type OutputConfig struct {
	Kind   string `mapstructure:"kind" yaml:"kind"`     // "stdout", "file", or "both"
	Path   string `mapstructure:"path" yaml:"path"`     // report file path for "file"/"both"
	Format string `mapstructure:"format" yaml:"format"` // "table" or "json"
	Chart  bool   `mapstructure:"chart" yaml:"chart"`   // render bar charts in text reports
}

// Load reads configuration from file, env, and defaults.
// Precedence: env (STEERAGE_*) > config file > defaults. Flags are applied
// on top by the CLI.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("STEERAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("input", "titanic.csv")
	v.SetDefault("log_level", "info")
	v.SetDefault("json_logs", false)
	v.SetDefault("loader.min_columns", 10)
	v.SetDefault("loader.cache_size", 8)
	v.SetDefault("output.kind", "stdout")
	v.SetDefault("output.path", "survival-report.txt")
	v.SetDefault("output.format", "table")
	v.SetDefault("output.chart", true)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("steerage")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the configuration to the given path as YAML, creating parent
// directories if necessary.
func Save(c *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
