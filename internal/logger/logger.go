package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

type ctxKey struct{}

// New builds a sugared zap logger: development config when QUOTE_ENV=dev,
// production JSON otherwise.
func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	env := os.Getenv("QUOTE_ENV")
	if strings.ToLower(env) == "dev" {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		opts = append(opts, zap.Fields(zap.String("QUOTE_ENV", env)))
		logger, err = zap.NewProduction(opts...)
	}
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

// NewContext returns a copy of ctx carrying l.
func NewContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger stored on ctx, or the global logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok && l != nil {
		return l
	}
	return zap.S()
}
