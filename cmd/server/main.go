package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/joho/godotenv"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
	"github.com/ezequielleiter/admin-buffets-teo/internal/config"
	"github.com/ezequielleiter/admin-buffets-teo/internal/teoauth"
	"github.com/ezequielleiter/admin-buffets-teo/internal/web"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("sin archivo .env, usando variables de entorno")
	}

	cfg := config.Load()

	authClient := teoauth.New(cfg.APIBaseURL, nil)
	apiClient := backend.New(cfg.APIBaseURL, nil)

	server, err := web.NewServer(cfg, authClient, apiClient)
	if err != nil {
		slog.Error("inicializando servidor", "error", err)
		os.Exit(1)
	}

	protect := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure),
		csrf.Path("/"),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           protect(server.Routes()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("servidor escuchando", "addr", cfg.Addr, "api", cfg.APIBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("el servidor dejó de escuchar", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("apagando servidor")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("apagado forzado", "error", err)
		os.Exit(1)
	}
	slog.Info("servidor apagado")
}
