package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/formosa-labs/rapport/internal/api"
	"github.com/formosa-labs/rapport/internal/bus"
	"github.com/formosa-labs/rapport/internal/config"
	"github.com/formosa-labs/rapport/internal/processor"
	"github.com/formosa-labs/rapport/internal/quota"
	"github.com/formosa-labs/rapport/internal/rapport"
	"github.com/formosa-labs/rapport/internal/realtime"
	"github.com/formosa-labs/rapport/internal/report"
	"github.com/formosa-labs/rapport/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("rapportd starting", "port", cfg.Port)

	if err := rapport.Validate(); err != nil {
		slog.Error("rule catalog invalid", "error", err)
		os.Exit(1)
	}
	slog.Info("rule catalog loaded", "rules", len(rapport.Rules()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis — access codes gate every session, so this one is required.
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		slog.Error("invalid REDIS_URL", "error", err)
		os.Exit(1)
	}
	codes := quota.NewStore(redis.NewClient(redisOpts), slog.Default())
	if err := codes.Ping(ctx); err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer codes.Close()
	slog.Info("redis connected")

	// Database (optional — sessions are analyzed but not persisted without it)
	var db *store.Store
	if cfg.DatabaseURL != "" {
		db, err = store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("database connected")
	} else {
		slog.Warn("DATABASE_URL not set — running without session persistence")
	}

	// Report provider (optional — no narrative coaching reports without it)
	var reporter *report.Generator
	switch {
	case cfg.ReportProvider == "openai" && cfg.OpenAIAPIKey != "":
		reporter = report.NewGenerator(report.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel), slog.Default())
		slog.Info("report provider ready", "provider", "openai", "model", cfg.OpenAIModel)
	case cfg.ReportProvider == "anthropic" && cfg.AnthropicAPIKey != "":
		reporter = report.NewGenerator(report.NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel), slog.Default())
		slog.Info("report provider ready", "provider", "anthropic", "model", cfg.AnthropicModel)
	default:
		slog.Warn("report provider not configured — running without narrative reports")
	}

	// Realtime voice sessions (optional)
	var minter *realtime.Client
	if cfg.OpenAIAPIKey != "" {
		minter = realtime.NewClient(cfg.OpenAIAPIKey, cfg.RealtimeModel, cfg.RealtimeVoice)
		slog.Info("realtime session client ready", "model", cfg.RealtimeModel)
	} else {
		slog.Warn("OPENAI_API_KEY not set — running without realtime sessions")
	}

	// NATS (optional — without it the live voice pipeline is off, HTTP only)
	var busClient *bus.Client
	if cfg.NatsURL != "" {
		busClient, err = bus.NewClient(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer busClient.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS_URL not set — running without the live session pipeline")
	}

	if busClient != nil {
		var writer processor.SessionWriter
		if db != nil {
			writer = db
		}
		var rep processor.Reporter
		if reporter != nil {
			rep = reporter
		}
		proc := processor.New(writer, busClient, rep, slog.Default())

		for subject, handler := range map[string]func(string, []byte){
			bus.SubjectSessionStarted:   proc.HandleSessionStarted,
			bus.SubjectSessionUtterance: proc.HandleUtterance,
			bus.SubjectSessionCompleted: proc.HandleSessionCompleted,
		} {
			if err := busClient.Subscribe(subject, handler); err != nil {
				slog.Error("failed to subscribe", "subject", subject, "error", err)
				os.Exit(1)
			}
		}
	}

	// HTTP API
	opts := api.Options{
		Port:     cfg.Port,
		Logger:   slog.Default(),
		Quota:    codes,
		AdminKey: cfg.AdminKey,
	}
	if db != nil {
		opts.Sessions = db
	}
	if reporter != nil {
		opts.Reporter = reporter
	}
	if minter != nil {
		opts.Minter = minter
	}
	srv := api.NewServer(opts)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	if busClient != nil {
		if err := busClient.Publish("rapport.service.registered", map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"port":      cfg.Port,
			"rules":     len(rapport.Rules()),
		}); err != nil {
			slog.Warn("failed to publish registration", "error", err)
		}
	}

	slog.Info("rapportd ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("rapportd stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
