package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Grana"`
	}

	DB struct {
		Host         string        `envconfig:"DB_HOST" default:"localhost"`
		Port         int           `envconfig:"DB_PORT" default:"5432"`
		User         string        `envconfig:"DB_USER" default:"postgres"`
		Password     string        `envconfig:"DB_PASSWORD" default:""`
		Name         string        `envconfig:"DB_NAME" default:"grana"`
		MaxOpenConns int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
		ConnLifetime time.Duration `envconfig:"DB_CONN_LIFETIME" default:"5m"`
	}

	Worker struct {
		Interval    time.Duration `envconfig:"WORKER_INTERVAL" default:"1h"`
		Concurrency int           `envconfig:"WORKER_CONCURRENCY" default:"4"`
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
