package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel       string  `env:"LOG_LEVEL" envDefault:"info"`
	OpeningBalance float64 `env:"OPENING_BALANCE_USD" envDefault:"10000"`
	API            API
	Cache          Cache
}

type API struct {
	Debug   bool          `env:"API_DEBUG" envDefault:"false"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	Yahoo   Yahoo
}

type Yahoo struct {
	Url string `env:"YAHOO_API_URL" envDefault:"https://yfapi.net"`
	Key string `env:"YAHOO_API_KEY"`
}

type Cache struct {
	QuotesExpiration time.Duration `env:"CACHE_QUOTES_EXPIRATION" envDefault:"60s"`
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}
