// Package logging provides a minimal two-destination logger: every message is
// written to standard output and appended to a single log file.
package logging

import (
	"fmt"
	"os"
)

// DefaultLogFile is the path used when a Logger is constructed with an empty
// path.
const DefaultLogFile = "default.log"

// Logger writes formatted messages to standard output and appends them to a
// log file. It holds only the file path and the termination policy, never an
// open handle, so copies of a Logger share no state and a single value is
// safe to use from several goroutines. Interleaving of lines between
// concurrent callers is the caller's concern.
type Logger struct {
	logFile          string
	terminateOnError bool
}

// New creates a Logger targeting logFilePath, creating (or truncating) the
// file immediately so that an unusable destination surfaces at construction
// and not at the first Log call. An empty path selects DefaultLogFile.
// When the file cannot be created, New writes a diagnostic to stderr and
// exits the process.
func New(logFilePath string, terminateOnError bool) *Logger {
	if logFilePath == "" {
		logFilePath = DefaultLogFile
	}
	f, err := os.Create(logFilePath)
	if err != nil {
		fatalf("Logger: failed to create log file %s: %v", logFilePath, err)
	}
	f.Close()

	return &Logger{
		logFile:          logFilePath,
		terminateOnError: terminateOnError,
	}
}

// NewDefault creates a Logger on DefaultLogFile that terminates the process
// when an error-level message is logged.
func NewDefault() *Logger {
	return New(DefaultLogFile, true)
}

// Log writes "[LEVEL] message" with a trailing newline to standard output,
// then appends the identical line to the log file and syncs it before
// returning. The message is written verbatim; embedded newlines produce a
// multi-line record. When level is LevelError on a Logger constructed with
// terminateOnError, the process exits once both destinations are written.
//
// The console write is unconditional. The file is opened in append mode on
// every call and must still exist; if it has been removed since construction,
// Log reports ErrDestinationUnavailable rather than recreating it. Failures
// after a successful open are reported as ErrWriteFailed.
func (l *Logger) Log(level LogLevel, message string) error {
	line := fmt.Sprintf("[%s] %s\n", level, message)

	os.Stdout.WriteString(line)

	f, err := os.OpenFile(l.logFile, os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %v", ErrDestinationUnavailable, l.logFile, err)
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("%w: writing to %s: %v", ErrWriteFailed, l.logFile, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("%w: syncing %s: %v", ErrWriteFailed, l.logFile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", ErrWriteFailed, l.logFile, err)
	}

	if level == LevelError && l.terminateOnError {
		fatalf("Logger: terminating after error-level message")
	}
	return nil
}

// fatalf writes a diagnostic to stderr and aborts the process.
func fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", v...)
	os.Exit(1)
}
