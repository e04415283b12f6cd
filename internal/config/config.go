package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the Blank Chart API.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"blankchart-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8090"`
	MetricsPort     int           `env:"METRICS_PORT" envDefault:"9091"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"console"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	EnableSwagger   bool          `env:"ENABLE_SWAGGER" envDefault:"true"`

	// Anthropic Messages API. The key is deliberately not required at boot:
	// the relay fails closed per request when it is missing so the rest of
	// the site keeps working without the assistant.
	AnthropicAPIKey    string        `env:"ANTHROPIC_API_KEY"`
	AnthropicBaseURL   string        `env:"ANTHROPIC_BASE_URL" envDefault:"https://api.anthropic.com"`
	AnthropicModel     string        `env:"ANTHROPIC_MODEL" envDefault:"claude-sonnet-4-5-20250929"`
	AnthropicMaxTokens int           `env:"ANTHROPIC_MAX_TOKENS" envDefault:"1024"`
	AnthropicTimeout   time.Duration `env:"ANTHROPIC_TIMEOUT" envDefault:"60s"`

	// Formspree form relay for curator transcripts.
	FormRelayBaseURL string        `env:"FORM_RELAY_BASE_URL" envDefault:"https://formspree.io"`
	FormRelayFormID  string        `env:"FORM_RELAY_FORM_ID" envDefault:"xlgwpkqg"`
	FormRelayTimeout time.Duration `env:"FORM_RELAY_TIMEOUT" envDefault:"15s"`

	// Optional YAML file overriding the compiled-in persona prompt.
	PersonaFile string `env:"PERSONA_FILE"`

	// Chat sessions live in memory only; idle sessions are reaped after TTL.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	if strings.TrimSpace(cfg.FormRelayFormID) == "" {
		return nil, fmt.Errorf("FORM_RELAY_FORM_ID must not be empty")
	}
	if cfg.AnthropicMaxTokens <= 0 {
		return nil, fmt.Errorf("ANTHROPIC_MAX_TOKENS must be positive")
	}

	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// MetricsAddr returns the Prometheus listen address.
func (c *Config) MetricsAddr() string {
	return fmt.Sprintf(":%d", c.MetricsPort)
}
