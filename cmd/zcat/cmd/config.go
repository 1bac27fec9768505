package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kulaginds/lzw"
)

const envPrefix = "ZCAT"

type Config struct {
	ConfigFile  string `mapstructure:"config"`
	Output      string `mapstructure:"output"`
	AlignGroups bool   `mapstructure:"align-groups"`
	BufferSize  int    `mapstructure:"buffer-size"`
	Stats       bool   `mapstructure:"stats"`
	LogLevel    string `mapstructure:"log-level"`
}

func defaultConfig() *Config {
	return &Config{
		AlignGroups: true,
		BufferSize:  64 * 1024,
		LogLevel:    "warn",
	}
}

func (cfg *Config) lzwOptions() *lzw.Options {
	return &lzw.Options{
		AlignCodeGroups: cfg.AlignGroups,
		BufferSize:      cfg.BufferSize,
	}
}

func setFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.StringVar(&cfg.ConfigFile, "config",
		cfg.ConfigFile, "Path to configuration file")

	flags.StringVarP(&cfg.Output, "output", "o",
		cfg.Output, "Write decompressed data to this file instead of stdout")

	flags.BoolVar(&cfg.AlignGroups, "align-groups",
		cfg.AlignGroups, "Expect compress(1) code group padding in .Z input")

	flags.IntVar(&cfg.BufferSize, "buffer-size",
		cfg.BufferSize, "Input buffer size in bytes")

	flags.BoolVar(&cfg.Stats, "stats",
		cfg.Stats, "Print decompression statistics to stderr")

	flags.StringVar(&cfg.LogLevel, "log-level",
		cfg.LogLevel, "log level (debug, info, warn, error)")
}

// loadConfig merges the config file, ZCAT_* environment variables and flags,
// flags taking precedence.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	vip := viper.New()
	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	err := vip.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	if file := vip.GetString("config"); file != "" {
		vip.SetConfigFile(file)

		err = vip.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := defaultConfig()
	err = vip.Unmarshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.BufferSize <= 0 {
		return nil, fmt.Errorf("invalid buffer size %d", cfg.BufferSize)
	}

	return cfg, nil
}
