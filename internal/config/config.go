// internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"*"`

	DB     DBConfig
	Events EventsConfig
	Redis  RedisConfig
	Log    LogConfig
}

type DBConfig struct {
	URL         string        `env:"DATABASE_URL"`
	User        string        `env:"DB_USER" envDefault:"postgres"`
	Password    string        `env:"DB_PASSWORD"`
	Host        string        `env:"DB_HOST" envDefault:"localhost"`
	Port        string        `env:"DB_PORT" envDefault:"5432"`
	Name        string        `env:"DB_NAME" envDefault:"influencer_sponsor_connect"`
	MaxOpen     int           `env:"DB_MAX_OPEN" envDefault:"20"`
	MaxIdle     int           `env:"DB_MAX_IDLE" envDefault:"5"`
	MaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// DSN returns DatabaseURL when set, otherwise a postgres URL built from the
// parts with the credentials escaped.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	user := url.User(c.User)
	if c.Password != "" {
		user = url.UserPassword(c.User, c.Password)
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     user,
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

type EventsConfig struct {
	AMQPURL string `env:"AMQP_URL"`
	Queue   string `env:"EVENTS_QUEUE" envDefault:"marketplace_events"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type LogConfig struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Format  string `env:"LOG_FORMAT" envDefault:"json"`
	Service string `env:"LOG_SERVICE"`
	Env     string `env:"APP_ENV"`
}

// Load reads an optional .env file and parses the process environment.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		slog.Warn("no .env file found, relying on OS environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
