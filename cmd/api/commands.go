package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	mw "github.com/milibrary/milibrary-api/internal/api/middlewares"
	"github.com/milibrary/milibrary-api/internal/api/router"
	"github.com/milibrary/milibrary-api/internal/config"
	"github.com/milibrary/milibrary-api/internal/metrics"
	"github.com/milibrary/milibrary-api/internal/repository/sqlconnect"
	storebooks "github.com/milibrary/milibrary-api/internal/store/books"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := config.New()

	root := &cobra.Command{
		Use:           "milibrary-api",
		Short:         "REST API for the milibrary personal book catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), v)
		},
	}
	root.PersistentFlags().String("host", "", "address to listen on (env HOST)")
	root.PersistentFlags().Int("port", 0, "port to listen on (env PORT)")
	_ = v.BindPFlag("host", root.PersistentFlags().Lookup("host"))
	_ = v.BindPFlag("port", root.PersistentFlags().Lookup("port"))

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve(cmd.Context(), v)
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Run the database health query once and exit",
			RunE: func(cmd *cobra.Command, args []string) error {
				return check(cmd.Context(), v)
			},
		},
	)
	return root
}

func serve(ctx context.Context, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Opened lazily by the first request that needs it.
	pool := sqlconnect.NewPool(cfg.Database, nil)
	defer pool.Close()

	var limiter *mw.TokenBucket
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		opt.DialTimeout = 2 * time.Second
		opt.ReadTimeout = 500 * time.Millisecond
		opt.WriteTimeout = 500 * time.Millisecond
		rdb := redis.NewClient(opt)
		defer rdb.Close()
		limiter = mw.NewTokenBucket(rdb, cfg.RateLimit.WritesPerSecond, cfg.RateLimit.Burst, mw.PerIPKey("milibrary:wr"))
		log.Printf("[server] write rate limit %.1f/s burst %d", cfg.RateLimit.WritesPerSecond, cfg.RateLimit.Burst)
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.Handler(router.Deps{
			Pool:         pool,
			Metrics:      metrics.New(),
			Limiter:      limiter,
			MaxBodyBytes: cfg.MaxBodyBytes,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("[server] shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}

func check(ctx context.Context, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool := sqlconnect.NewPool(cfg.Database, nil)
	defer pool.Close()

	err = pool.WithConn(ctx, func(conn *sql.Conn) error {
		return storebooks.Ping(ctx, conn)
	})
	if err != nil {
		return fmt.Errorf("database check failed: %w", err)
	}
	log.Println("[check] database connected")
	return nil
}
