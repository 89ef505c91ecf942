package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/milibrary/milibrary-api/internal/repository/sqlconnect"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database  sqlconnect.Config
		Redis     Redis
		RateLimit RateLimit
	}

	HTTP struct {
		Host            string
		Port            int
		MaxBodyBytes    int64
		ShutdownTimeout time.Duration
	}

	Redis struct {
		URL string // empty disables write rate limiting
	}

	RateLimit struct {
		WritesPerSecond float64
		Burst           int
	}
)

func (h HTTP) Addr() string {
	return net.JoinHostPort(h.Host, strconv.Itoa(h.Port))
}

// New returns a viper instance that reads the environment and carries the
// service defaults. Callers may bind flags to it before Load.
func New() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8000)
	v.SetDefault("max_body_size", 1<<20)
	v.SetDefault("shutdown_timeout", "10s")

	v.SetDefault("db_host", "postgres-service.milibrary.svc.cluster.local")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "library_user")
	v.SetDefault("db_password", "securepassword")
	v.SetDefault("db_name", "milibrary_db")
	v.SetDefault("db_min_conns", 3)
	v.SetDefault("db_max_conns", 10)
	v.SetDefault("db_connect_timeout", "5s")

	v.SetDefault("redis_url", "")
	v.SetDefault("write_rate_per_sec", 5)
	v.SetDefault("write_burst", 20)
	return v
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		HTTP: HTTP{
			Host:            v.GetString("host"),
			Port:            v.GetInt("port"),
			MaxBodyBytes:    v.GetInt64("max_body_size"),
			ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		},
		Database: sqlconnect.Config{
			Host:           v.GetString("db_host"),
			Port:           v.GetInt("db_port"),
			User:           v.GetString("db_user"),
			Password:       v.GetString("db_password"),
			Name:           v.GetString("db_name"),
			MinConns:       v.GetInt("db_min_conns"),
			MaxConns:       v.GetInt("db_max_conns"),
			ConnectTimeout: v.GetDuration("db_connect_timeout"),
		},
		Redis: Redis{URL: v.GetString("redis_url")},
		RateLimit: RateLimit{
			WritesPerSecond: v.GetFloat64("write_rate_per_sec"),
			Burst:           v.GetInt("write_burst"),
		},
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		errs = append(errs, fmt.Errorf("DB_PORT %d out of range", c.Database.Port))
	}
	if c.Database.MaxConns < 1 {
		errs = append(errs, errors.New("DB_MAX_CONNS must be at least 1"))
	}
	if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		errs = append(errs, fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS (%d)", c.Database.MaxConns))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_SIZE must be positive"))
	}
	if c.Redis.URL != "" && (c.RateLimit.WritesPerSecond <= 0 || c.RateLimit.Burst < 1) {
		errs = append(errs, errors.New("WRITE_RATE_PER_SEC and WRITE_BURST must be positive when REDIS_URL is set"))
	}
	return errors.Join(errs...)
}
