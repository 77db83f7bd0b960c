// Package config loads CLI settings from a YAML file and the environment.
//
// Precedence, highest first: command-line flags (applied by the caller),
// environment variables, the config file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIURL = "MMAICTL_API_URL"
	EnvToken  = "MMAICTL_TOKEN"
	EnvConfig = "MMAICTL_CONFIG"
)

// DefaultAPIURL is used when nothing else sets the API URL.
const DefaultAPIURL = "http://localhost:32323/v1"

// Config holds the resolved CLI settings.
type Config struct {
	// APIURL is the control-plane base URL.
	APIURL string `yaml:"api_url" validate:"required,url"`

	// Token is sent as a bearer token when set.
	Token string `yaml:"token"`

	// Output is the default output format for rendering commands.
	Output string `yaml:"output" validate:"omitempty,oneof=text default dot json yaml table"`

	Verbose bool `yaml:"verbose"`
	Quiet   bool `yaml:"quiet" validate:"excluded_with=Verbose"`
}

// Default returns a Config with built-in defaults.
func Default() *Config {
	return &Config{APIURL: DefaultAPIURL}
}

// DefaultPath returns $HOME/.config/mmaictl/config.yaml, or "" when the
// home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mmaictl", "config.yaml")
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error unless required is set, which callers do when the path was given
// explicitly.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment. getenv is usually
// os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := getenv(EnvToken); v != "" {
		c.Token = v
	}
}

var validate = validator.New()

// Validate checks the resolved settings.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "APIURL":
		if fe.Tag() == "required" {
			return "api url is required"
		}
		return fmt.Sprintf("api url %q is not a valid URL", fe.Value())
	case "Output":
		return fmt.Sprintf("unknown output format %q", fe.Value())
	case "Quiet":
		return "--verbose and --quiet are mutually exclusive"
	default:
		return fe.Error()
	}
}
