package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"todo-api/internal/config"
	router "todo-api/internal/http"
	"todo-api/internal/http/handlers"
	"todo-api/internal/logging"
	"todo-api/internal/service"
	"todo-api/internal/store"
	"todo-api/internal/store/actor"
	"todo-api/internal/store/memory"

	"github.com/charmbracelet/log"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("config load failed", "err", err)
	}

	logOpts := logging.DefaultOptions()
	logOpts.Level = cfg.LogLevel
	logOpts.Format = cfg.LogFormat
	logger := logging.New(os.Stderr, logOpts)

	todoStore, closeStore := newStore(cfg)

	service, err := service.New(todoStore)
	if err != nil {
		logger.Fatal("service initiation failed", "err", err)
	}

	handler := handlers.New(service, logger)

	router := router.New(handler, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr, "store", cfg.StoreBackend)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", "err", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	<-stop
	logger.Info("shut down signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown failed", "err", err)
	}
	if err := closeStore(ctx); err != nil {
		logger.Error("store close failed", "err", err)
	}

	logger.Info("shut down gracefully")
}

func newStore(cfg config.Config) (store.TodoStore, func(context.Context) error) {
	switch cfg.StoreBackend {
	case config.BackendActor:
		s := actor.New(cfg.MailboxSize)
		return s, s.Close
	default:
		return memory.New(), func(context.Context) error { return nil }
	}
}
