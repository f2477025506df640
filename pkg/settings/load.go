package settings

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values from the config file.
const (
	EnvServerPort    = "BQ_SERVER_PORT"
	EnvQueueCapacity = "BQ_QUEUE_CAPACITY"
	EnvLogLevel      = "BQ_LOG_LEVEL"
)

var validate = validator.New()

// Load reads the YAML file at path on top of Default, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config %s", path)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvServerPort); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvServerPort)
		}
		cfg.Server.Port = port
	}
	if v, ok := os.LookupEnv(EnvQueueCapacity); ok {
		capacity, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "invalid %s", EnvQueueCapacity)
		}
		cfg.Queue.Capacity = capacity
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.Logger.LogLevel = v
	}
	return nil
}
