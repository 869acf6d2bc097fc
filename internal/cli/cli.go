package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/formulagraph/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Environment variables that supply defaults for the matching flags.
const (
	EnvLogFormat = "FORMULAGRAPH_LOG_FORMAT"
	EnvLogLevel  = "FORMULAGRAPH_LOG_LEVEL"
)

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("formulagraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
formulagraph - Lists a workbook's formulas in dependency order.

Usage:
  formulagraph [options] [WORKBOOK]

Arguments:
  WORKBOOK
    Path to a single .hcl workbook file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	workbookFlag := flagSet.String("workbook", "", "Path to the workbook file or directory.")
	wFlag := flagSet.String("w", "", "Path to the workbook file or directory (shorthand).")
	outFlag := flagSet.String("out", "", "Write the report to this file instead of stdout.")
	oFlag := flagSet.String("o", "", "Write the report to this file (shorthand).")
	logFormatFlag := flagSet.String("log-format", envDefault(EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envDefault(EnvLogLevel, "info"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	markerFlag := flagSet.String("comment-marker", "#", "Prefix of comment and metadata lines in the report.")
	keepFlag := flagSet.Bool("keep-unparsed", true, "Keep formulas with unsupported functions as raw text instead of dropping them.")
	headerFlag := flagSet.Bool("header", true, "Prepend source, formula count and elapsed time to the report.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := firstNonEmpty(*workbookFlag, *wFlag)
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Workbook path determined.", "path", path)

	if path == "" {
		slog.Debug("No workbook path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	marker := strings.TrimSpace(*markerFlag)
	if marker == "" {
		return nil, false, &ExitError{Code: 2, Message: "invalid comment-marker: must not be blank"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		WorkbookPath:  path,
		OutputPath:    firstNonEmpty(*outFlag, *oFlag),
		LogFormat:     logFormat,
		LogLevel:      logLevel,
		CommentMarker: marker,
		KeepUnparsed:  *keepFlag,
		Header:        *headerFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// envDefault returns the value of the environment variable key, or fallback
// when it is unset or blank.
func envDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}
