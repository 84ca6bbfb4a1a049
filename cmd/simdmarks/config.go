package main

import (
	"flag"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/biggeezerdevelopment/simdmarks"
)

type Config struct {
	Level    string
	LogLevel string
	Indices  bool
	Quotes   bool

	level    simdmarks.Level
	logLevel level.Option
}

func (c *Config) RegisterFlags(f *flag.FlagSet) {
	f.StringVar(&c.Level, "level", "auto", "Backend to run: auto, scalar, narrow or wide. SIMDMARKS_LEVEL caps what auto picks.")
	f.StringVar(&c.LogLevel, "log.level", "info", "Only log messages with the given severity or above. Valid levels: [debug, info, warn, error]")
	f.BoolVar(&c.Indices, "indices", false, "Print the structural index positions of every input.")
	f.BoolVar(&c.Quotes, "quotes", false, "Print the positions of unescaped quotes of every input.")
}

// Validate parses the string flags.
func (c *Config) Validate() error {
	l, err := simdmarks.ParseLevel(c.Level)
	if err != nil {
		return errors.Wrap(err, "invalid -level")
	}
	c.level = l

	switch strings.ToLower(c.LogLevel) {
	case "debug":
		c.logLevel = level.AllowDebug()
	case "info":
		c.logLevel = level.AllowInfo()
	case "warn":
		c.logLevel = level.AllowWarn()
	case "error":
		c.logLevel = level.AllowError()
	default:
		return errors.Errorf("invalid -log.level %q", c.LogLevel)
	}
	return nil
}
