package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config is read from RAMPAGED_* environment variables and, optionally, from
// a rampaged.yaml file in the working directory or ./config.
type Config struct {
	Env      string
	LogLevel string
	HTTPAddr string
	DSN      string
	BaseURL  string
	SeedSize int
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("rampaged")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
	}

	v.SetEnvPrefix("RAMPAGED")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("db.dsn", "file::memory:?cache=shared")
	v.SetDefault("http.base_url", "")
	v.SetDefault("seed.size", 42)

	cfg := &Config{
		Env:      v.GetString("env"),
		LogLevel: v.GetString("log.level"),
		HTTPAddr: v.GetString("http.addr"),
		DSN:      v.GetString("db.dsn"),
		BaseURL:  v.GetString("http.base_url"),
		SeedSize: v.GetInt("seed.size"),
	}

	if cfg.SeedSize < 0 {
		return nil, fmt.Errorf("seed size must not be negative, got %d", cfg.SeedSize)
	}

	return cfg, nil
}

// NewLogger writes human readable output in development and JSON otherwise.
func NewLogger(cfg *Config) zerolog.Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
