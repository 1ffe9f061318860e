package main

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "POOLDEMO_"

// Config holds the demo's settings.
type Config struct {
	Workers  int    `koanf:"workers"`
	LogLevel string `koanf:"loglevel"`
	Pinned   bool   `koanf:"pinned"`
}

func defaultConfig() Config {
	return Config{
		Workers:  4,
		LogLevel: "info",
	}
}

// loadConfig merges defaults, an optional YAML file, POOLDEMO_* environment
// variables, and command-line flags, in increasing order of precedence.
func loadConfig(args []string) (Config, error) {
	flags := pflag.NewFlagSet("pooldemo", pflag.ContinueOnError)
	flags.Int("workers", defaultConfig().Workers, "number of pool workers")
	flags.String("loglevel", defaultConfig().LogLevel, "log level (trace, debug, info, warn, error)")
	flags.Bool("pinned", false, "pin workers to OS threads")
	configFile := flags.String("config", "", "path to a YAML config file")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, err
	}
	if *configFile != "" {
		if err := k.Load(file.Provider(*configFile), yaml.Parser()); err != nil {
			return Config{}, err
		}
	}
	// POOLDEMO_WORKERS -> workers, etc.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return Config{}, err
	}
	if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
