package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"CapitolPulse/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"required"`
	Server      struct {
		Port            int           `yaml:"port" default:"8080" validate:"gt=0,lte=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Data struct {
		BaseURL        string        `yaml:"base_url" validate:"required,url"`
		RequestTimeout time.Duration `yaml:"request_timeout" default:"30s"`
		Resources      struct {
			Politicians  string `yaml:"politicians" default:"politician.full.json"`
			Transactions string `yaml:"transactions" default:"transaction.full.json"`
			Issuers      string `yaml:"issuers" default:"issuer.full.json"`
			Committees   string `yaml:"committees" default:"committee.full.json"`
			States       string `yaml:"states" default:"state.full.json"`
			Performance  string `yaml:"performance" default:"issuer-performance.full.json"`
			Benchmark    string `yaml:"benchmark" default:"special-price.full.json"`
		} `yaml:"resources"`
		BenchmarkIssuerID string `yaml:"benchmark_issuer_id" default:"111111"`
	} `yaml:"data"`
}

// Load reads a YAML configuration file, fills defaults, and validates it.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	if err := validator.New().Struct(&c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		c.Data.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	c.Server.Port = util.ParseIntDefault(os.Getenv("SERVER_PORT"), c.Server.Port)

	return c, nil
}
