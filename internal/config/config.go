package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Folded"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"folded"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		Secret   string        `envconfig:"AUTH_SECRET"`
		TokenTTL time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"720h"`
	}

	Plaid struct {
		ClientID string `envconfig:"PLAID_CLIENT_ID"`
		Secret   string `envconfig:"PLAID_SECRET"`
		// BaseURL selects the provider environment (sandbox, development, production).
		BaseURL        string `envconfig:"PLAID_BASE_URL" default:"https://sandbox.plaid.com"`
		WebhookURL     string `envconfig:"PLAID_WEBHOOK_URL"`
		ClientName     string `envconfig:"PLAID_CLIENT_NAME" default:"Folded"`
		AndroidPackage string `envconfig:"PLAID_ANDROID_PACKAGE" default:"so.folded.app"`
		DaysRequested  int    `envconfig:"PLAID_DAYS_REQUESTED" default:"730"`
	}

	Push struct {
		Endpoint  string `envconfig:"PUSH_ENDPOINT" default:"https://fcm.googleapis.com/fcm/send"`
		ServerKey string `envconfig:"PUSH_SERVER_KEY"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
