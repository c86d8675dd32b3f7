package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/i9si-sistemas/pushwoosh"
)

var ErrMissingCredentials = errors.New("missing pushwoosh credentials")

type Config struct {
	Pushwoosh struct {
		Username    string `yaml:"username" env:"PUSHWOOSH_USERNAME"`
		Password    string `yaml:"password" env:"PUSHWOOSH_PASSWORD"`
		Application string `yaml:"application" env:"PUSHWOOSH_APPLICATION"`
		BaseURL     string `yaml:"base_url" env:"PUSHWOOSH_BASE_URL"`
	} `yaml:"pushwoosh"`

	Log struct {
		Debug bool `yaml:"debug" env:"PUSHWOOSH_DEBUG"`
	} `yaml:"log"`
}

// LoadDotEnv exports the variables of the given .env files. Variables that
// are already set keep their value.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

// Load reads comma-separated YAML files ("-c common.yml,pushwoosh.yml"), later
// files overriding earlier ones, then applies PUSHWOOSH_* environment
// variables on top. An empty pathList means environment only.
func Load(pathList string) (*Config, error) {
	var c Config
	for _, p := range strings.Split(pathList, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
	}

	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// defaults
	if c.Pushwoosh.BaseURL == "" {
		c.Pushwoosh.BaseURL = pushwoosh.DefaultBaseURL
	}

	var missing []string
	if c.Pushwoosh.Username == "" {
		missing = append(missing, "username")
	}
	if c.Pushwoosh.Password == "" {
		missing = append(missing, "password")
	}
	if c.Pushwoosh.Application == "" {
		missing = append(missing, "application")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	return &c, nil
}

func (c *Config) Credentials() pushwoosh.Credentials {
	return pushwoosh.Credentials{
		Username:      c.Pushwoosh.Username,
		Password:      c.Pushwoosh.Password,
		ApplicationID: c.Pushwoosh.Application,
	}
}
