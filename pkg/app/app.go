package app

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Qendolin/minilog/pkg/logging"
)

// App ties the parsed arguments to a logger and drives a single logging run.
type App struct {
	logger *logging.Logger
	args   *CLIArgs
	in     io.Reader
}

// NewApp creates a new application instance that reads from standard input.
func NewApp(logger *logging.Logger, args *CLIArgs) *App {
	return &App{
		logger: logger,
		args:   args,
		in:     os.Stdin,
	}
}

// Run logs the message given on the command line, or, when none was given,
// logs each input line until EOF. It stops at the first logging failure.
func (a *App) Run() error {
	if a.args.Message != "" {
		return a.logger.Log(a.args.Level, a.args.Message)
	}

	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		if err := a.logger.Log(a.args.Level, scanner.Text()); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	return nil
}
