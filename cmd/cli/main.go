// A local REPL for talking to the assistant without the HTTP server.
// 'reset' clears the conversation, 'exit' or 'quit' (or Ctrl+D) stops.
package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"calcom-assistant/config"
	"calcom-assistant/internal/agent"
	"calcom-assistant/internal/agent/orchestrator"
	"calcom-assistant/internal/agent/tools"
	"calcom-assistant/internal/session"
	"calcom-assistant/pkg/calcom"
	"calcom-assistant/pkg/llmprovider"
	"calcom-assistant/pkg/log"
)

const cliSessionID = "cli"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn", // keep the REPL quiet
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	calClient, err := calcom.New(calcom.Config{
		APIKey:  cfg.Calcom.APIKey,
		BaseURL: cfg.Calcom.BaseURL,
	})
	if err != nil {
		fmt.Println("Failed to create cal.com client: ", err)
		return
	}

	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		fmt.Println("Failed to initialize LLM providers: ", err)
		return
	}

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

	orc := orchestrator.New(providers[0], registry, logger, orchestrator.Options{
		DefaultTimezone: cfg.Assistant.Timezone,
		OwnerName:       cfg.Assistant.OwnerName,
		OwnerEmail:      cfg.Assistant.OwnerEmail,
		MaxToolSteps:    cfg.Assistant.MaxToolSteps,
	})

	store := session.NewMemoryStore()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "You: ",
		HistoryLimit:    1000,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Println("Failed to create readline: ", err)
		return
	}
	defer rl.Close()

	fmt.Println("Cal.com AI Assistant  (type 'quit' or 'exit' to stop, 'reset' to clear history)")
	fmt.Println(strings.Repeat("-", 60))

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			fmt.Println("Goodbye!")
			return
		}
		if err != nil {
			fmt.Println("Input error: ", err)
			return
		}

		input := strings.TrimSpace(line)
		switch {
		case input == "":
			continue
		case input == "exit" || input == "quit":
			fmt.Println("Goodbye!")
			return
		case input == "reset":
			store.Reset(cliSessionID)
			fmt.Println("Conversation history cleared.")
			continue
		}

		sess := store.GetOrCreate(cliSessionID)
		reply, err := orc.ProcessTurn(ctx, sess, input)
		if err != nil {
			fmt.Println("Error: ", err)
			continue
		}
		fmt.Println("\nAssistant:", reply)
		fmt.Println()
	}
}
