// Package config resolves runtime settings for the converter.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvLogLevel names the environment variable holding the log level.
	EnvLogLevel = "RIS2BIB_LOG_LEVEL"
	// DefaultLogLevel keeps successful runs silent on stderr.
	DefaultLogLevel = "warn"
)

// ValidLogLevels lists the supported log level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ErrInvalidLogLevel is returned for a log level outside ValidLogLevels.
var ErrInvalidLogLevel = errors.New("log level must be one of: debug, info, warn, error")

// Settings holds the resolved runtime settings.
type Settings struct {
	LogLevel string
}

// LoadEnv reads variables from .env files into the process environment
// without overriding variables that are already set. Missing files are
// ignored. With no arguments, .env in the working directory is read.
func LoadEnv(filenames ...string) {
	_ = godotenv.Load(filenames...)
}

// Resolve builds settings from defaults, then the environment, then the
// given flag value when it is non-empty.
func Resolve(flagLogLevel string) (*Settings, error) {
	s := &Settings{LogLevel: DefaultLogLevel}

	if env := strings.TrimSpace(os.Getenv(EnvLogLevel)); env != "" {
		s.LogLevel = env
	}
	if flagLogLevel != "" {
		s.LogLevel = flagLogLevel
	}

	if err := ValidateLogLevel(s.LogLevel); err != nil {
		return nil, err
	}
	s.LogLevel = strings.ToLower(s.LogLevel)
	return s, nil
}

// ValidateLogLevel checks that level is one of ValidLogLevels, ignoring case.
func ValidateLogLevel(level string) error {
	for _, valid := range ValidLogLevels {
		if strings.EqualFold(level, valid) {
			return nil
		}
	}
	return fmt.Errorf("%w (got %q)", ErrInvalidLogLevel, level)
}
