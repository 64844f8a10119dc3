package tools

import (
	"context"

	"calcom-assistant/internal/agent"
	"calcom-assistant/pkg/calcom"
	pkgLog "calcom-assistant/pkg/log"
)

type ListEventTypesTool struct {
	client calcom.ICalcom
	l      pkgLog.Logger
}

func NewListEventTypesTool(client calcom.ICalcom, l pkgLog.Logger) *ListEventTypesTool {
	return &ListEventTypesTool{
		client: client,
		l:      l,
	}
}

func (t *ListEventTypesTool) Name() string {
	return "list_event_types"
}

func (t *ListEventTypesTool) Description() string {
	return "List all event types available for booking on cal.com. " +
		"Call this first when the user wants to book a meeting so they " +
		"can choose the correct event type."
}

func (t *ListEventTypesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
		"required":   []string{},
	}
}

func (t *ListEventTypesTool) Execute(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	t.l.Infof(ctx, "list_event_types: fetching event types")

	resp, err := t.client.ListEventTypes(ctx)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Verify interface compliance
var _ agent.Tool = (*ListEventTypesTool)(nil)
