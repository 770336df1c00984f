package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel     int          `env:"LOG_LEVEL" envDefault:"0"`
	HTTP         HTTP         `envPrefix:"HTTP_"`
	JWT          JWT          `envPrefix:"JWT_"`
	Generator    Generator    `envPrefix:"GENERATOR_"`
	Storage      Storage      `envPrefix:"MINIO_"`
	Subscription Subscription `envPrefix:"SUBSCRIPTION_"`
	SeedDemoJobs bool         `env:"SEED_DEMO_JOBS" envDefault:"true"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port string `env:"PORT" envDefault:"8080"`
}

// JWT contains access token parameters.
type JWT struct {
	Secret string `env:"SECRET" envDefault:"devsecret"`
}

// Generator contains text-generation client parameters.
type Generator struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-2.5-flash"`
}

// Storage contains document storage parameters. When UseMemory is set the
// server keeps uploads in process memory instead of an object store.
type Storage struct {
	UseMemory bool   `env:"USE_MEMORY" envDefault:"true"`
	Endpoint  string `env:"ENDPOINT" envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"inclusive-jobs-documents"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// Subscription contains premium policy parameters. The product launched
// without an end-date check, so expiry enforcement stays behind a flag.
type Subscription struct {
	EnforceExpiry bool `env:"ENFORCE_EXPIRY" envDefault:"false"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
