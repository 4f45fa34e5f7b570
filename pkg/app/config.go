package app

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Qendolin/minilog/pkg/logging"
	"github.com/caarlos0/env/v11"
)

// Config contains the logger settings read from the environment.
type Config struct {
	File        string `env:"MINILOG_FILE"`
	Level       string `env:"MINILOG_LEVEL" envDefault:"info"`
	NoTerminate bool   `env:"MINILOG_NO_TERMINATE" envDefault:"false"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// CLIArgs holds all command-line arguments passed to the application.
type CLIArgs struct {
	File        string
	Level       logging.LogLevel
	NoTerminate bool
	Message     string
}

// ParseCLIArgs parses the command-line flags on top of the environment
// defaults and returns a populated CLIArgs struct.
func ParseCLIArgs(fs *flag.FlagSet, arguments []string, cfg *Config) (*CLIArgs, error) {
	args := &CLIArgs{}

	var level string
	fs.StringVar(&args.File, "file", cfg.File, "Specifies the log file to append to. Created empty on startup.")
	fs.StringVar(&level, "level", cfg.Level, "Specifies the level to log at (info, debug, warning, error).")
	fs.BoolVar(&args.NoTerminate, "no-terminate", cfg.NoTerminate, "Keep running after logging an error-level message.")
	if err := fs.Parse(arguments); err != nil {
		return nil, err
	}

	parsed, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	args.Level = parsed
	args.Message = strings.Join(fs.Args(), " ")

	return args, nil
}
