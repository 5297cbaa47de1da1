package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"leaseline.app/server/common/id"
	"leaseline.app/server/common/llm"
	"leaseline.app/server/common/logger"
	"leaseline.app/server/common/otel"
	"leaseline.app/server/core/config"
	"leaseline.app/server/core/db"
	"leaseline.app/server/internal/classify"
	"leaseline.app/server/internal/http/middleware"
	httprouter "leaseline.app/server/internal/http/router"
	"leaseline.app/server/internal/queue"
	"leaseline.app/server/internal/service"
	"leaseline.app/server/internal/sms"
	"leaseline.app/server/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeServer)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet, OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "leaseline starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
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
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Pipeline.RedisStream)

	followUpProducer := queue.NewRedisProducer(redisClient, cfg.Pipeline.RedisStream, cfg.Pipeline.RedisDelayedSet, nil)
	defer followUpProducer.Close()

	stores := store.NewStores(database.Queries())
	classifier := buildClassifier(ctx, cfg.Classifier)
	gateway := sms.NewTwilioGateway(cfg.Twilio)

	services := service.NewServices(
		stores,
		service.NewTxRunner(database),
		classifier,
		gateway,
		followUpProducer,
		cfg.FollowUp.Delay,
		nil,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, stores)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

// buildClassifier wires the LLM classifier over the rule table when an API
// key is configured, and runs rules-only otherwise.
func buildClassifier(ctx context.Context, cfg config.ClassifierConfig) classify.Classifier {
	rules := classify.NewRuleClassifier()
	if !cfg.Enabled() {
		slog.InfoContext(ctx, "llm classifier disabled, using rules only")
		return rules
	}

	client, err := llm.New(llm.Config{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
	})
	if err != nil {
		slog.WarnContext(ctx, "llm client init failed, using rules only", "error", err)
		return rules
	}

	slog.InfoContext(ctx, "llm classifier enabled", "model", client.Model())
	return classify.WithFallback(classify.NewLLMClassifier(client, cfg.MaxTokens), rules)
}

func setupRouter(cfg config.Config, services *service.Services, stores *store.Stores) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span, Recovery catches panics, Logger
	// logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, stores, httprouter.RouterConfig{
		Twilio: cfg.Twilio,
	})

	return router
}

const banner = `
██╗     ███████╗ █████╗ ███████╗███████╗██╗     ██╗███╗   ██╗███████╗
██║     ██╔════╝██╔══██╗██╔════╝██╔════╝██║     ██║████╗  ██║██╔════╝
██║     █████╗  ███████║███████╗█████╗  ██║     ██║██╔██╗ ██║█████╗
██║     ██╔══╝  ██╔══██║╚════██║██╔══╝  ██║     ██║██║╚██╗██║██╔══╝
███████╗███████╗██║  ██║███████║███████╗███████╗██║██║ ╚████║███████╗
╚══════╝╚══════╝╚═╝  ╚═╝╚══════╝╚══════╝╚══════╝╚═╝╚═╝  ╚═══╝╚══════╝
`
