package sqlconnect

import (
	"context"
	"database/sql"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Opener builds the underlying *sql.DB. Open is used when none is given.
type Opener func(ctx context.Context, cfg Config) (*sql.DB, error)

// Pool is the process-wide connection pool. It is opened on first use; a
// failed open is not remembered, so the next caller tries again.
type Pool struct {
	cfg  Config
	open Opener

	opening singleflight.Group

	mu sync.Mutex
	db *sql.DB
}

func NewPool(cfg Config, open Opener) *Pool {
	if open == nil {
		open = Open
	}
	return &Pool{cfg: cfg, open: open}
}

func (p *Pool) current() *sql.DB {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.db
}

// DB returns the shared *sql.DB, opening it if needed. Callers that arrive
// while an open is in flight wait on that attempt instead of starting their
// own, and give up when their context ends.
func (p *Pool) DB(ctx context.Context) (*sql.DB, error) {
	if db := p.current(); db != nil {
		return db, nil
	}

	// The attempt outlives any single caller; Open bounds it with ConnectTimeout.
	openCtx := context.WithoutCancel(ctx)
	ch := p.opening.DoChan("open", func() (any, error) {
		if db := p.current(); db != nil {
			return db, nil
		}
		db, err := p.open(openCtx, p.cfg)
		if err != nil {
			log.Printf("[pool] connect to %s:%d/%s failed: %v", p.cfg.Host, p.cfg.Port, p.cfg.Name, err)
			return nil, err
		}
		log.Printf("[pool] connected to %s:%d/%s (min=%d max=%d)", p.cfg.Host, p.cfg.Port, p.cfg.Name, p.cfg.MinConns, p.cfg.MaxConns)
		p.mu.Lock()
		p.db = db
		p.mu.Unlock()
		return db, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*sql.DB), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// WithConn holds one connection for the duration of fn and always releases it.
func (p *Pool) WithConn(ctx context.Context, fn func(conn *sql.Conn) error) error {
	db, err := p.DB(ctx)
	if err != nil {
		return err
	}
	conn, err := db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(conn)
}

func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}
