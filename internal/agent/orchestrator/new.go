package orchestrator

import (
	"calcom-assistant/internal/agent"
	"calcom-assistant/pkg/llmprovider"
	pkgLog "calcom-assistant/pkg/log"
)

// Options tunes the conversation loop.
type Options struct {
	// DefaultTimezone is assumed for users until they state another.
	DefaultTimezone string

	// OwnerName and OwnerEmail identify the calendar owner. When set
	// they seed the "Known user info" block so self-bookings never ask
	// for details the deployment already knows.
	OwnerName  string
	OwnerEmail string

	// MaxToolSteps bounds LLM round-trips per turn.
	MaxToolSteps int
}

type Orchestrator struct {
	provider llmprovider.Provider
	registry *agent.ToolRegistry
	l        pkgLog.Logger
	opts     Options
}

func New(provider llmprovider.Provider, registry *agent.ToolRegistry, l pkgLog.Logger, opts Options) *Orchestrator {
	if opts.DefaultTimezone == "" {
		opts.DefaultTimezone = DefaultTimezone
	}
	if opts.MaxToolSteps <= 0 {
		opts.MaxToolSteps = DefaultMaxToolSteps
	}
	return &Orchestrator{
		provider: provider,
		registry: registry,
		l:        l,
		opts:     opts,
	}
}
