package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	WorkbookPath string // fixture file or directory
	OutputPath   string // report file; empty writes to the app's output

	LogFormat string
	LogLevel  string

	CommentMarker string
	KeepUnparsed  bool
	Header        bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorkbookPath == "" {
		return nil, errors.New("WorkbookPath is a required configuration field and cannot be empty")
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	if cfg.CommentMarker == "" {
		return nil, errors.New("CommentMarker cannot be empty")
	}
	return &cfg, nil
}
