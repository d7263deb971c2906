package config

import (
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE"`
	Port       int  `env:"PORT" envDefault:"9090"`

	Secret           string `env:"SECRET,required"`
	PostgresqlURL    string `env:"POSTGRESQL_URL,required"`
	RedisURL         string `env:"REDIS_URL,required"`
	BcryptHasherCost int    `env:"BCRYPT_HASHER_COST" envDefault:"10"`

	AdminUsername string `env:"ADMIN_USERNAME,required"`
	AdminPassword string `env:"ADMIN_PASSWORD,required"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	AwsRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey string `env:"AWS_ACCESS_KEY_ID"`
	AwsSecretKey string `env:"AWS_SECRET_ACCESS_KEY"`

	SmsSignature   string        `env:"SMS_SIGNATURE" envDefault:"Artistic Family Dentistry"`
	SmsSendTimeout time.Duration `env:"SMS_SEND_TIMEOUT" envDefault:"5s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
