package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Jeomhps/business-reviews/internal/config"
	"github.com/Jeomhps/business-reviews/internal/db"
	"github.com/Jeomhps/business-reviews/internal/logging"
	"github.com/Jeomhps/business-reviews/internal/server"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	d, err := db.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("db: %+v", err)
	}
	defer d.Close()

	// No requests are served until both tables exist.
	if err := db.EnsureSchema(ctx, d); err != nil {
		log.Fatalf("ensure schema: %+v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := server.New(d, server.Options{
		BaseURL:        cfg.BaseURL,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
		Log:            log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	go func() {
		log.Infof("listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	sctx, scancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer scancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
