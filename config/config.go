// Copyright 2026 The NLP Odyssey Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/openai/openai-go/v3/packages/param"
	"gopkg.in/yaml.v3"

	"github.com/nlpodyssey/research-pipeline-go/model"
)

// Config is the process configuration of the research pipeline.
// It is built once at startup and read-only thereafter.
type Config struct {
	OpenAI    OpenAIConfig  `yaml:"openai"`
	Retry     RetryConfig   `yaml:"retry"`
	Archive   ArchiveConfig `yaml:"archive"`
	OutputDir string        `yaml:"output_dir"`
}

type OpenAIConfig struct {
	// API key. Falls back to the OPENAI_API_KEY environment variable.
	APIKey string `yaml:"api_key"`

	// Optional API base URL override.
	// Falls back to the OPENAI_BASE_URL environment variable.
	BaseURL string `yaml:"base_url"`

	// Name of the chat completions model to use.
	Model string `yaml:"model"`

	// Optional model settings overrides. Unset values keep the defaults.
	Temperature *float64 `yaml:"temperature"`
	TopP        *float64 `yaml:"top_p"`
	MaxTokens   *int64   `yaml:"max_tokens"`
}

type RetryConfig struct {
	// Maximum number of retries after a failed model invocation.
	// Zero disables retrying: each invocation is attempted exactly once.
	MaxRetries int `yaml:"max_retries"`

	// Initial backoff delay between retries.
	BaseDelay Duration `yaml:"base_delay"`

	// Upper bound for the backoff delay.
	MaxDelay Duration `yaml:"max_delay"`

	// Optional per-attempt timeout. Zero disables it.
	Timeout Duration `yaml:"timeout"`
}

type ArchiveConfig struct {
	// Database driver: "sqlite", "postgres", or empty to disable archiving.
	Driver string `yaml:"driver"`

	// Data source name passed to the driver.
	DSN string `yaml:"dsn"`

	// Optional table name override.
	Table string `yaml:"table"`
}

// Duration unmarshals from YAML strings in time.ParseDuration format,
// such as "1s" or "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Model settings matching the original pipeline behavior.
var defaultModelSettings = model.Settings{
	Temperature: param.NewOpt(0.7),
}

// Default returns the configuration matching the original pipeline behavior:
// gpt-3.5-turbo with temperature 0.7, no retry, no archive.
func Default() Config {
	return Config{
		OpenAI: OpenAIConfig{
			Model: "gpt-3.5-turbo",
		},
		Retry: RetryConfig{
			BaseDelay: Duration(time.Second),
			MaxDelay:  Duration(30 * time.Second),
		},
	}
}

// Load reads a YAML configuration file, applied over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file %q: %w", path, err)
	}
	if err = cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load, returning the default configuration
// when path is empty.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// FromEnv fills missing OpenAI credentials from the environment.
func (c *Config) FromEnv() {
	if c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = os.Getenv("OPENAI_BASE_URL")
	}
}

// ModelSettings returns the default model settings with any configured
// overrides applied.
func (c Config) ModelSettings() model.Settings {
	var override model.Settings
	if c.OpenAI.Temperature != nil {
		override.Temperature = param.NewOpt(*c.OpenAI.Temperature)
	}
	if c.OpenAI.TopP != nil {
		override.TopP = param.NewOpt(*c.OpenAI.TopP)
	}
	if c.OpenAI.MaxTokens != nil {
		override.MaxTokens = param.NewOpt(*c.OpenAI.MaxTokens)
	}
	return defaultModelSettings.Resolve(override)
}

// ProviderParams returns the OpenAI provider parameters derived from the
// configuration.
func (c Config) ProviderParams() model.OpenAIProviderParams {
	params := model.OpenAIProviderParams{
		Settings: c.ModelSettings(),
	}
	if c.OpenAI.APIKey != "" {
		params.APIKey = param.NewOpt(c.OpenAI.APIKey)
	}
	if c.OpenAI.BaseURL != "" {
		params.BaseURL = param.NewOpt(c.OpenAI.BaseURL)
	}
	return params
}

// RetryPolicy returns the model retry policy derived from the configuration.
func (c Config) RetryPolicy() model.RetryPolicy {
	return model.RetryPolicy{
		MaxRetries: c.Retry.MaxRetries,
		BaseDelay:  time.Duration(c.Retry.BaseDelay),
		MaxDelay:   time.Duration(c.Retry.MaxDelay),
		Timeout:    time.Duration(c.Retry.Timeout),
	}
}

func (c Config) validate() error {
	switch c.Archive.Driver {
	case "", "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported archive driver %q", c.Archive.Driver)
	}
	if c.Archive.Driver == "postgres" && c.Archive.DSN == "" {
		return fmt.Errorf("archive dsn is required for the postgres driver")
	}
	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry max_retries must not be negative")
	}
	return nil
}
