package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/peopleregistry/backend/internal/common/constants"
	commonerrors "github.com/peopleregistry/backend/internal/common/errors"
)

type APIConfig struct {
	HTTPPort       string        `validate:"required,numeric"`
	DatabaseURL    string        `validate:"required"`
	RequestTimeout time.Duration `validate:"gt=0"`
	SearchTimeout  time.Duration `validate:"gt=0"`

	// StrictStack makes an unparseable or over-long stack entry fail the
	// whole decode instead of silently degrading to "no stack".
	StrictStack bool

	CircuitBreakerThreshold int32         `validate:"gt=0"`
	CircuitBreakerTimeout   time.Duration `validate:"gt=0"`
	CircuitBreakerReset     time.Duration `validate:"gt=0"`
}

var validate = validator.New()

func LoadAPIConfig() (APIConfig, error) {
	databaseURL, err := mustEnv("DATABASE_URL")
	if err != nil {
		return APIConfig{}, err
	}

	cfg := APIConfig{
		HTTPPort:                getEnv("PEOPLE_HTTP_PORT", constants.DefaultHTTPPort),
		DatabaseURL:             databaseURL,
		RequestTimeout:          getDurationEnv("PEOPLE_REQUEST_TIMEOUT", constants.DefaultRequestTimeout),
		SearchTimeout:           getDurationEnv("PEOPLE_SEARCH_TIMEOUT", constants.DefaultSearchTimeout),
		StrictStack:             getBoolEnv("PEOPLE_STRICT_STACK", false),
		CircuitBreakerThreshold: int32(getIntEnv("PEOPLE_CB_THRESHOLD", constants.DefaultCircuitBreakerThreshold)),
		CircuitBreakerTimeout:   getDurationEnv("PEOPLE_CB_TIMEOUT", constants.DefaultCircuitBreakerTimeout),
		CircuitBreakerReset:     getDurationEnv("PEOPLE_CB_RESET", constants.DefaultCircuitBreakerReset),
	}

	if err := validate.Struct(cfg); err != nil {
		return APIConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", commonerrors.ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getIntEnv(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func getBoolEnv(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
