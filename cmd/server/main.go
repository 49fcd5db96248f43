package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidmartinii-sketch/ai-business-assistant/internal/auth"
	"github.com/davidmartinii-sketch/ai-business-assistant/internal/config"
	"github.com/davidmartinii-sketch/ai-business-assistant/internal/logger"
	"github.com/davidmartinii-sketch/ai-business-assistant/internal/server"
	"github.com/davidmartinii-sketch/ai-business-assistant/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel)

	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Setup(ctx, db); err != nil {
		return err
	}

	accounts := store.NewAccounts(db)
	users := store.NewUsers(db)
	auther := auth.NewAuthenticator(accounts, cfg).WithLogger(log)

	srv := server.New(auther, users, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(fmt.Sprintf(":%d", cfg.Port))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
		return srv.Shutdown()
	}
}
