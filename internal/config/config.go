package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidTimeout = errors.New("request-timeout must be positive")

type Config struct {
	LogLevel       string        `yaml:"log-level" env:"MINESWEEPER_LOG_LEVEL" env-default:"warn"`
	Host           string        `yaml:"host" env:"MINESWEEPER_HOST"`
	Port           string        `yaml:"port" env:"MINESWEEPER_PORT"`
	Username       string        `yaml:"username" env:"MINESWEEPER_USERNAME"`
	Password       string        `yaml:"password" env:"MINESWEEPER_PASSWORD"`
	RequestTimeout time.Duration `yaml:"request-timeout" env:"MINESWEEPER_REQUEST_TIMEOUT" env-default:"30s"`
}

// Load - reads the config file when it exists, then applies environment overrides.
// A missing file is not an error: the environment alone is used.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	// also the deadline of the whole command
	if config.RequestTimeout <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidTimeout, config.RequestTimeout)
	}

	return config, nil
}

// MustLoad - like Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
