package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bugstore/internal/config"
	"bugstore/internal/connections/database"
	"bugstore/internal/connections/rabbitmq"
	"bugstore/internal/connections/rediscache"
	"bugstore/internal/domain"
	"bugstore/internal/events"
	"bugstore/internal/handlers"
	"bugstore/internal/httpx"
	"bugstore/internal/logger"
	"bugstore/internal/repository"
	"bugstore/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	port := flag.Int("port", 0, "http port, overrides the config file")
	flag.Parse()

	lg := logger.New("bootstrap")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(*configPath)
	if err != nil {
		lg.Error("load_config", err, map[string]any{"path": *configPath})
		os.Exit(1)
	}
	if *port != 0 {
		cfg.HTTP.Port = *port
	}

	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		lg.Error("connect_database", err, nil)
		os.Exit(1)
	}
	defer db.Close()

	checks := []handlers.HealthCheck{
		{Name: "database", Check: db.PingContext},
	}

	var publisher service.OrderEventPublisher
	if cfg.RabbitMQ.Host != "" {
		mq, err := rabbitmq.Dial(cfg.RabbitMQ)
		if err != nil {
			lg.Error("connect_rabbitmq", err, nil)
			os.Exit(1)
		}
		defer mq.Close()
		publisher = events.NewPublisher(mq)
		checks = append(checks, handlers.HealthCheck{
			Name:  "rabbitmq",
			Check: func(context.Context) error { return mq.Ping() },
		})
	}

	repo := repository.New(db)
	if cfg.Redis.Enabled {
		cache, err := rediscache.Connect(ctx, cfg.Redis)
		if err != nil {
			lg.Error("connect_redis", err, nil)
			os.Exit(1)
		}
		repo.ProductRepo = repository.NewCachedProductRepository(
			repo.ProductRepo, cache,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
			lg.With("product-cache"),
		)
	}

	svc := service.New(repo, domain.SystemClock(), publisher, lg)
	handler := handlers.New(svc, checks...)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	lg.Info("service_started", map[string]any{"service": "bugstore", "addr": addr})

	if err := httpx.New(addr, handler.Routes()).Run(ctx); err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}
	lg.Info("service_stopped", nil)
}
