package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"leaseline.app/server/common/id"
	"leaseline.app/server/common/llm"
	"leaseline.app/server/common/logger"
	"leaseline.app/server/common/otel"
	"leaseline.app/server/core/config"
	"leaseline.app/server/core/db"
	"leaseline.app/server/internal/classify"
	"leaseline.app/server/internal/queue"
	"leaseline.app/server/internal/sms"
	"leaseline.app/server/internal/store"
	"leaseline.app/server/internal/worker"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	slog.InfoContext(ctx, "leaseline worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Pipeline.RedisGroup,
		"consumer_name", cfg.Pipeline.RedisConsumer)

	// Different node ID than the server so both can mint IDs concurrently
	if err := id.Init(2); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Pipeline.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Pipeline.RedisStream)

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:       cfg.Pipeline.RedisStream,
		Group:        cfg.Pipeline.RedisGroup,
		Consumer:     cfg.Pipeline.RedisConsumer,
		DLQStream:    cfg.Pipeline.RedisDLQStream,
		DelayedSet:   cfg.Pipeline.RedisDelayedSet,
		BatchSize:    10,
		Block:        5 * time.Second,
		MaxAttempts:  3,
		RequeueDelay: time.Minute,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	stores := store.NewStores(database.Queries())
	gateway := sms.NewTwilioGateway(cfg.Twilio)

	var writer classify.FollowUpWriter
	if cfg.Classifier.Enabled() {
		client, err := llm.New(llm.Config{
			APIKey:  cfg.Classifier.APIKey,
			BaseURL: cfg.Classifier.BaseURL,
			Model:   cfg.Classifier.Model,
		})
		if err != nil {
			slog.WarnContext(ctx, "llm client init failed, templates only", "error", err)
		} else {
			writer = classify.NewLLMFollowUpWriter(client)
		}
	}

	w := worker.New(consumer, stores.Leads(), stores.Communications(), writer, gateway, worker.Config{
		MaxAttempts: 3,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- w.Run(ctx)
	}()

	slog.InfoContext(ctx, "worker initialized and running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	w.Stop()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-errCh:
		if err != nil {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

const banner = `
██╗     ███████╗ █████╗ ███████╗███████╗██╗     ██╗███╗   ██╗███████╗
██║     ██╔════╝██╔══██╗██╔════╝██╔════╝██║     ██║████╗  ██║██╔════╝
██║     █████╗  ███████║███████╗█████╗  ██║     ██║██╔██╗ ██║█████╗
██║     ██╔══╝  ██╔══██║╚════██║██╔══╝  ██║     ██║██║╚██╗██║██╔══╝
███████╗███████╗██║  ██║███████║███████╗███████╗██║██║ ╚████║███████╗
╚══════╝╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝╚═╝╚═╝  ╚═══╝╚══════╝

                                                          follow-up worker
`
