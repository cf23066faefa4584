package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// Config holds output and parsing settings. A config file sets defaults that
// command-line flags override.
type Config struct {
	// Format is the fmt verb used to print the result.
	Format  string `toml:"fmt"`
	Echo    bool   `toml:"echo"`
	Strict  bool   `toml:"strict"`
	Verbose bool   `toml:"verbose"`
}

func defaultConfig() Config {
	return Config{Format: "%v"}
}

// loadConfig reads a TOML config file over cfg. Keys that don't belong to
// Config are an error.
func loadConfig(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrapf(err, "loading config %s", path)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return errors.Errorf("unknown keys in config %s: %v", path, keys)
	}
	return nil
}

// override applies flags given on the command line.
func (cfg *Config) override(c *cli.Context) {
	if c.IsSet("fmt") {
		cfg.Format = c.String("fmt")
	}
	if c.IsSet("echo") {
		cfg.Echo = c.Bool("echo")
	}
	if c.IsSet("strict") {
		cfg.Strict = c.Bool("strict")
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
}
