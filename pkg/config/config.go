package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string  `envconfig:"APP_ENV" default:"local"`
	Port         int     `envconfig:"PORT" default:"8080"`
	SentryDSN    string  `envconfig:"SENTRY_DSN"`
	AllowOrigins string  `envconfig:"ALLOW_ORIGINS" default:"*"`
	RateLimit    float64 `envconfig:"RATE_LIMIT"`

	Log struct {
		Debug bool   `envconfig:"LOG_DEBUG"`
		File  string `envconfig:"LOG_FILE"`
	}
	Mongo struct {
		URI            string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
		Database       string        `envconfig:"MONGO_DATABASE" default:"sample_mflix"`
		ConnectTimeout time.Duration `envconfig:"MONGO_CONNECT_TIMEOUT" default:"10s"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}
