package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	_defaultInput    = "data/day05.dat"
	_defaultFormat   = "text"
	_defaultLogLevel = "warn"
	_envPrefix       = "COALESCE"
)

type Config struct {
	Input    string
	Part     int
	Format   string
	Timing   bool
	LogLevel zerolog.Level
}

func _addFlags(flags *pflag.FlagSet) {
	flags.Int("part", 0, "which part to solve (0 for both)")
	flags.String("format", _defaultFormat, "output format (text or yaml)")
	flags.Bool("timing", false, "report how long each part took")
	flags.String("log-level", _defaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("config", "", "config file")
}

// _loadConfig resolves settings from flags, then COALESCE_* environment
// variables, then the config file, then defaults.
func _loadConfig(flags *pflag.FlagSet, args []string) (*Config, error) {
	v := viper.New()
	v.SetDefault("input", _defaultInput)
	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}

	if name := v.GetString("config"); name != "" {
		v.SetConfigFile(name)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %v", name)
		}
	}

	if len(args) > 0 {
		v.Set("input", args[0])
	}

	cfg := &Config{
		Input:  v.GetString("input"),
		Part:   v.GetInt("part"),
		Format: v.GetString("format"),
		Timing: v.GetBool("timing"),
	}

	if cfg.Part < 0 || cfg.Part >= len(_parts) {
		return nil, errors.Errorf("part must be 0, 1 or 2, not %v", cfg.Part)
	}
	switch cfg.Format {
	case "text", "yaml":
	default:
		return nil, errors.Errorf("unknown format %q", cfg.Format)
	}

	level, err := zerolog.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	cfg.LogLevel = level

	return cfg, nil
}
