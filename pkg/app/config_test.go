package app

import (
	"flag"
	"io"
	"os"
	"testing"

	"github.com/Qendolin/minilog/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.File)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, false, cfg.NoTerminate)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "file override",
			envVars: map[string]string{
				"MINILOG_FILE": "app.log",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "app.log", cfg.File)
			},
		},
		{
			name: "level override",
			envVars: map[string]string{
				"MINILOG_LEVEL": "warning",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "warning", cfg.Level)
			},
		},
		{
			name: "no-terminate override",
			envVars: map[string]string{
				"MINILOG_NO_TERMINATE": "true",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, true, cfg.NoTerminate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				os.Setenv(key, value)
				defer os.Unsetenv(key)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}

func TestParseCLIArgs(t *testing.T) {
	tests := []struct {
		name      string
		arguments []string
		cfg       *Config
		expected  *CLIArgs
	}{
		{
			name:      "defaults",
			arguments: []string{},
			cfg:       &Config{Level: "info"},
			expected:  &CLIArgs{File: "", Level: logging.LevelInfo, NoTerminate: false, Message: ""},
		},
		{
			name:      "environment defaults apply without flags",
			arguments: []string{},
			cfg:       &Config{File: "env.log", Level: "debug", NoTerminate: true},
			expected:  &CLIArgs{File: "env.log", Level: logging.LevelDebug, NoTerminate: true, Message: ""},
		},
		{
			name:      "flags override environment defaults",
			arguments: []string{"-file", "run.log", "-level", "error", "-no-terminate"},
			cfg:       &Config{File: "env.log", Level: "debug", NoTerminate: false},
			expected:  &CLIArgs{File: "run.log", Level: logging.LevelError, NoTerminate: true, Message: ""},
		},
		{
			name:      "positional arguments join into the message",
			arguments: []string{"-level", "warning", "disk", "almost", "full"},
			cfg:       &Config{Level: "info"},
			expected:  &CLIArgs{File: "", Level: logging.LevelWarning, NoTerminate: false, Message: "disk almost full"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet("minilog", flag.ContinueOnError)
			args, err := ParseCLIArgs(fs, tt.arguments, tt.cfg)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, args)
		})
	}
}

func TestParseCLIArgs_UnknownLevel(t *testing.T) {
	fs := flag.NewFlagSet("minilog", flag.ContinueOnError)

	_, err := ParseCLIArgs(fs, []string{"-level", "fatal"}, &Config{Level: "info"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestParseCLIArgs_UnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("minilog", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	_, err := ParseCLIArgs(fs, []string{"-bogus"}, &Config{Level: "info"})

	require.Error(t, err)
}
