package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"solar-quote/internal/api"
	"solar-quote/internal/catalog"
	"solar-quote/internal/logger"
	"solar-quote/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	log := logger.New()
	defer log.Sync()
	zap.ReplaceGlobals(log.Desugar())

	if err := catalog.Validate(); err != nil {
		log.Fatalw("catalog invalid", "error", err)
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	handler := api.NewRouter(api.Options{
		Store:          store.New(),
		Logger:         log,
		AllowedOrigins: splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("starting API server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server error", "error", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutdown requested")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warnw("shutdown incomplete", "error", err)
	}
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
