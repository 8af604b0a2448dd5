package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/idea-feed/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// MustGetEnvAsStrings splits a comma separated variable, dropping empty entries.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	s := MustGetEnvAsString(ctx, name)

	var values []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}

	return values
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	s := MustGetEnvAsString(ctx, name)

	v, err := strconv.Atoi(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as int",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as int [%s]: %s", name, s))
	}

	return v
}

// MustGetEnvAsInt64s parses a comma separated list of ids.
func MustGetEnvAsInt64s(ctx context.Context, name string) []int64 {
	var values []int64
	for _, s := range MustGetEnvAsStrings(ctx, name) {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			logger := domain.LoggerFromContext(ctx)
			logger.ErrorContext(ctx, "unable to parse environment variable as list of integers",
				"variable_name", name,
				"variable_value", s,
			)
			panic(fmt.Sprintf("unable to parse environment variable as list of integers [%s]: %s", name, s))
		}
		values = append(values, v)
	}

	return values
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	s := MustGetEnvAsString(ctx, name)

	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	default:
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as boolean ('true'/'false')",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as boolean ('true'/'false') [%s]: %s", name, s))
	}
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	s := MustGetEnvAsString(ctx, name)

	duration, err := time.ParseDuration(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as duration",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as duration [%s]: %s", name, s))
	}

	return duration
}

// GetEnvAsIntOrDefault returns def when the variable is unset; a set but invalid value panics.
func GetEnvAsIntOrDefault(ctx context.Context, name string, def int) int {
	if _, exists := os.LookupEnv(name); !exists {
		return def
	}
	return MustGetEnvAsInt(ctx, name)
}

// GetEnvAsDurationOrDefault returns def when the variable is unset; a set but invalid value panics.
func GetEnvAsDurationOrDefault(ctx context.Context, name string, def time.Duration) time.Duration {
	if _, exists := os.LookupEnv(name); !exists {
		return def
	}
	return MustGetEnvAsDuration(ctx, name)
}
