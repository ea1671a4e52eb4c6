// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Load parses a struct once
// per type and serves later calls from an in-memory cache; MustLoad panics on
// failure. LoadEnv reads explicit .env files and ResetCache clears the cache
// between tests.
//
//	type Config struct {
//		MinFractionDigits int    `env:"STRKIT_MIN_FRACTION_DIGITS" envDefault:"2"`
//		MaskChar          string `env:"STRKIT_MASK_CHAR" envDefault:"*"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Errors are sentinel values for errors.Is: ErrParsingConfig,
// ErrLoadingEnvFile, ErrConfigNotLoaded and ErrNilPointer.
package config
