package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"calcom-assistant/config"
	_ "calcom-assistant/docs" // Swagger docs
	"calcom-assistant/internal/agent"
	"calcom-assistant/internal/agent/orchestrator"
	"calcom-assistant/internal/agent/tools"
	chatUC "calcom-assistant/internal/chat/usecase"
	"calcom-assistant/internal/httpserver"
	"calcom-assistant/internal/session"
	"calcom-assistant/pkg/calcom"
	"calcom-assistant/pkg/llmprovider"
	"calcom-assistant/pkg/log"
)

// @title       Cal.com AI Assistant API
// @description An AI-powered assistant for managing cal.com bookings via LLM function calling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Cal.com AI Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Cal.com API client
	calClient, err := calcom.New(calcom.Config{
		APIKey:  cfg.Calcom.APIKey,
		BaseURL: cfg.Calcom.BaseURL,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create cal.com client: %v", err)
	}

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize LLM providers: %v", err)
	}
	provider := providers[0]
	logger.Infof(ctx, "Using LLM provider %s (%s)", provider.Name(), provider.Model())

	// 5. Tool registry
	registry := agent.NewToolRegistry()
	registry.Register(tools.NewListEventTypesTool(calClient, logger))
	registry.Register(tools.NewGetAvailableSlotsTool(calClient, logger))
	registry.Register(tools.NewCreateBookingTool(calClient, logger))
	registry.Register(tools.NewListBookingsTool(calClient, logger))
	registry.Register(tools.NewCancelBookingTool(calClient, logger))
	registry.Register(tools.NewRescheduleBookingTool(calClient, logger))
	registry.Register(tools.NewResolveDateTool())
	registry.Register(tools.NewLocalToUTCTool())
	registry.Register(tools.NewUTCToLocalTool())

	// 6. Conversation loop
	orc := orchestrator.New(provider, registry, logger, orchestrator.Options{
		DefaultTimezone: cfg.Assistant.Timezone,
		OwnerName:       cfg.Assistant.OwnerName,
		OwnerEmail:      cfg.Assistant.OwnerEmail,
		MaxToolSteps:    cfg.Assistant.MaxToolSteps,
	})

	// 7. Session store
	var store session.Store
	if cfg.Assistant.Session.Bounded {
		store = session.NewLRUStore(cfg.Assistant.Session.MaxSessions, cfg.Assistant.Session.TTL)
		logger.Infof(ctx, "Session store: LRU (cap=%d ttl=%s)", cfg.Assistant.Session.MaxSessions, cfg.Assistant.Session.TTL)
	} else {
		store = session.NewMemoryStore()
		logger.Info(ctx, "Session store: in-memory (unbounded)")
	}

	// 8. Chat use case
	uc := chatUC.New(store, orc, logger)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		ChatUseCase:  uc,
		SessionStore: store,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
