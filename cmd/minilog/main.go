package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Qendolin/minilog/pkg/app"
	"github.com/Qendolin/minilog/pkg/logging"
)

func main() {
	// 1. Load the environment configuration.
	cfg, err := app.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// 2. Parse the command-line flags on top of it.
	cliArgs, err := app.ParseCLIArgs(flag.CommandLine, os.Args[1:], cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// 3. Create the logger. This creates or truncates the log file and
	// aborts the process when that fails.
	logger := logging.New(cliArgs.File, !cliArgs.NoTerminate)

	// 4. Run the application.
	a := app.NewApp(logger, cliArgs)
	if err := a.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
