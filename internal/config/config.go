package config

import (
	"fmt"
	"os"
	"time"

	skpraws "github.com/skpr/lambda-sns-alarm-slack/pkg/aws"
	"github.com/skpr/lambda-sns-alarm-slack/pkg/slack"
)

// Environment variables used to configure the function.
const (
	EnvWebhookURLParameter = "WEBHOOK_URL_PARAMETER"
	EnvSlackUsername       = "SLACK_USERNAME"
	EnvSlackIconEmoji      = "SLACK_ICON_EMOJI"
	EnvSecretTimeout       = "SECRET_TIMEOUT"
	EnvWebhookTimeout      = "WEBHOOK_TIMEOUT"
	EnvLogLevel            = "LOG_LEVEL"
)

// DefaultTimeout applied to both the parameter lookup and the webhook request.
const DefaultTimeout = 5 * time.Second

// Config for the notifier.
type Config struct {
	// SSM parameter holding the webhook URL.
	WebhookURLParameter string
	Username            string
	IconEmoji           string
	SecretTimeout       time.Duration
	WebhookTimeout      time.Duration
	LogLevel            string
}

// Default configuration.
func Default() Config {
	return Config{
		WebhookURLParameter: skpraws.ParameterWebhookURL,
		Username:            slack.DefaultUsername,
		IconEmoji:           slack.DefaultIconEmoji,
		SecretTimeout:       DefaultTimeout,
		WebhookTimeout:      DefaultTimeout,
		LogLevel:            "info",
	}
}

// Load the configuration from the environment, falling back to defaults.
func Load() (Config, error) {
	cfg := Default()

	if v, ok := os.LookupEnv(EnvWebhookURLParameter); ok {
		cfg.WebhookURLParameter = v
	}

	if v, ok := os.LookupEnv(EnvSlackUsername); ok {
		cfg.Username = v
	}

	if v, ok := os.LookupEnv(EnvSlackIconEmoji); ok {
		cfg.IconEmoji = v
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}

	var err error

	cfg.SecretTimeout, err = duration(EnvSecretTimeout, cfg.SecretTimeout)
	if err != nil {
		return cfg, err
	}

	cfg.WebhookTimeout, err = duration(EnvWebhookTimeout, cfg.WebhookTimeout)
	if err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate the configuration.
func (c Config) Validate() error {
	if c.WebhookURLParameter == "" {
		return fmt.Errorf("%s must not be empty", EnvWebhookURLParameter)
	}

	if c.SecretTimeout <= 0 {
		return fmt.Errorf("%s must be positive", EnvSecretTimeout)
	}

	if c.WebhookTimeout <= 0 {
		return fmt.Errorf("%s must be positive", EnvWebhookTimeout)
	}

	return nil
}

func duration(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return d, nil
}
