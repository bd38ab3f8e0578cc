package config

import (
	"github.com/caarlos0/env/v11"
)

// Config is the webhookd daemon configuration, read from the environment.
type Config struct {
	Addr string `env:"ADDR" envDefault:":8080"`

	// WebhookSecret is the shared secret the provider signs requests with.
	WebhookSecret string `env:"PATHAO_WEBHOOK_SECRET,required"`

	// IntegrationSecret overrides the default value echoed back in the
	// integration response header.
	IntegrationSecret string `env:"PATHAO_INTEGRATION_SECRET"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
