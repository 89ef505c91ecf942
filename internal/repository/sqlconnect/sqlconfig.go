package sqlconnect

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net"
	"net/url"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type Config struct {
	Host           string
	Port           int
	User           string
	Password       string
	Name           string
	MinConns       int
	MaxConns       int
	ConnectTimeout time.Duration
}

// DSN renders the config as a postgres:// URL. Credentials are escaped.
func (c Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Name,
	}
	if c.ConnectTimeout > 0 {
		q := url.Values{}
		q.Set("connect_timeout", strconv.Itoa(connectTimeoutSeconds(c.ConnectTimeout)))
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// connectTimeoutSeconds rounds up; the driver reads 0 as "wait forever".
func connectTimeoutSeconds(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}

// maxIdleTime is how long an idle connection may sit before it is closed.
// With a minimum configured, idle connections are kept so the warmed ones
// survive quiet periods; ConnMaxLifetime still rotates them.
func maxIdleTime(cfg Config) time.Duration {
	if cfg.MinConns > 0 {
		return 0
	}
	return 5 * time.Minute
}

// Open connects to Postgres through the pgx stdlib driver and sizes the pool.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, err
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(pctx); err != nil {
		db.Close()
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxConns)
	db.SetMaxIdleConns(cfg.MaxConns)
	db.SetConnMaxIdleTime(maxIdleTime(cfg))
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := warm(pctx, db, cfg.MinConns); err != nil {
		db.Close()
		return nil, fmt.Errorf("warm %d connections: %w", cfg.MinConns, err)
	}
	return db, nil
}

// warm opens n connections at once and hands them back idle.
func warm(ctx context.Context, db *sql.DB, n int) error {
	conns := make([]*sql.Conn, 0, n)
	defer func() {
		for _, c := range conns {
			c.Close()
		}
	}()
	for i := 0; i < n; i++ {
		c, err := db.Conn(ctx)
		if err != nil {
			return err
		}
		conns = append(conns, c)
	}
	return nil
}
