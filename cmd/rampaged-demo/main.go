// Command rampaged-demo serves a paged, sortable list of orders from an
// embedded SQLite database.
//
//	curl -i 'http://localhost:8080/orders?pageNumber=2&pageSize=5&sortBy=customer,-total'
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dj-doMains/rampaged"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	log := NewLogger(cfg)
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := OpenStore(cfg.DSN, cfg.SeedSize)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open store")
	}

	opts := rampaged.NewOptions(rampaged.WithLogger(log))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newEngine(db, opts, cfg.BaseURL),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.Env).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cannot shut down gracefully")
	}
	log.Info().Msg("stopped")
}
