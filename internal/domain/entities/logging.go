package entities

import (
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
)

const logFileMode = 0o644

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger creates the run's log sink with the default text formatter.
func NewLogger() *logger.Logger {
	log := logger.New()
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	log.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		log.SetLevel(logger.DebugLevel)
	}
	return log
}

// ConfigureLogger applies the logging options to log. When an output file
// is configured, entries go to both stderr and the file; the returned closer
// releases the file.
func ConfigureLogger(log *logger.Logger, options *LoggingOptions, verbose bool) (io.Closer, error) {
	var closer io.Closer = nopCloser{}

	if options != nil {
		level, err := ParseLogLevel(options.LogLevel)
		if err != nil {
			return closer, err
		}
		log.SetLevel(level)

		if options.OutputFile != "" {
			file, openErr := os.OpenFile(options.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
			if openErr != nil {
				return closer, fmt.Errorf("failed to open log file %q: %w", options.OutputFile, openErr)
			}
			log.SetOutput(io.MultiWriter(os.Stderr, file))
			closer = file
		}
	}

	if verbose {
		log.SetLevel(logger.DebugLevel)
	}

	return closer, nil
}
