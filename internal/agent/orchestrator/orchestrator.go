package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"calcom-assistant/internal/session"
	"calcom-assistant/pkg/llmprovider"
)

// ProcessTurn sends one user message into the conversation and runs the
// tool-calling loop until the model produces a plain text reply. The
// session lock is held for the whole turn so concurrent requests on one
// session queue up instead of interleaving history.
func (o *Orchestrator) ProcessTurn(ctx context.Context, sess *session.Session, userMessage string) (string, error) {
	sess.Lock()
	defer sess.Unlock()

	o.updateProfileFromMessage(sess, userMessage)

	sess.Messages = append(sess.Messages, llmprovider.Message{
		Role:  "user",
		Parts: []llmprovider.Part{{Text: userMessage}},
	})

	for step := 0; step < o.opts.MaxToolSteps; step++ {
		o.l.Infof(ctx, LogMsgTurnStep, step+1, o.opts.MaxToolSteps)

		req := &llmprovider.Request{
			SystemInstruction: o.systemMessage(sess),
			Messages:          sess.Messages,
			Tools:             o.registry.ToFunctionDefinitions(),
		}

		resp, err := o.provider.GenerateContent(ctx, req)
		if err != nil {
			return "", fmt.Errorf(ErrMsgLLMError+": %w", step, err)
		}
		if len(resp.Content.Parts) == 0 {
			return "", fmt.Errorf(ErrMsgEmptyLLMResponse)
		}

		sess.Messages = append(sess.Messages, resp.Content)

		calls := functionCalls(resp.Content)
		if len(calls) == 0 {
			o.l.Infof(ctx, LogMsgTurnFinished, step+1)
			return textOf(resp.Content), nil
		}

		// Execute each requested tool call in model order. Failures are
		// fed back to the model as error payloads, never surfaced as
		// turn errors, so it can recover or apologize in prose.
		toolMsg := llmprovider.Message{Role: "tool"}
		for _, call := range calls {
			o.l.Infof(ctx, LogMsgCallingTool, call.Name, call.Args)
			o.updateProfileFromToolArgs(sess, call.Name, call.Args)

			result, err := o.registry.Dispatch(ctx, call.Name, call.Args)
			if err != nil {
				o.l.Errorf(ctx, LogMsgToolFailed, call.Name, err)
				result = map[string]string{"error": err.Error()}
			}

			toolMsg.Parts = append(toolMsg.Parts, llmprovider.Part{
				FunctionResponse: &llmprovider.FunctionResponse{
					ID:       call.ID,
					Name:     call.Name,
					Response: result,
				},
			})
		}
		sess.Messages = append(sess.Messages, toolMsg)
	}

	o.l.Warnf(ctx, LogMsgMaxStepsExceeded, o.opts.MaxToolSteps)
	return MsgMaxStepsExceeded, nil
}

// systemMessage rebuilds the system instruction with the current time
// and everything known about the user so far.
func (o *Orchestrator) systemMessage(sess *session.Session) *llmprovider.Message {
	now := time.Now().UTC().Format("2006-01-02 15:04 UTC")

	name := sess.Profile.Name
	if name == "" {
		name = o.opts.OwnerName
	}
	email := sess.Profile.Email
	if email == "" {
		email = o.opts.OwnerEmail
	}
	tz := sess.Profile.Timezone
	if tz == "" {
		tz = o.opts.DefaultTimezone
	}

	var lines []string
	if name != "" {
		lines = append(lines, "- Name: "+name)
	}
	if email != "" {
		lines = append(lines, "- Email: "+email)
	}
	if tz != "" {
		lines = append(lines, "- Timezone: "+tz)
	}

	var profileSection string
	if len(lines) > 0 {
		profileSection = "\nKnown user info (do NOT ask for these again):\n" + strings.Join(lines, "\n") + "\n"
	}

	return &llmprovider.Message{
		Role:  "system",
		Parts: []llmprovider.Part{{Text: fmt.Sprintf(systemPromptTemplate, now, profileSection, o.opts.DefaultTimezone)}},
	}
}

func functionCalls(msg llmprovider.Message) []*llmprovider.FunctionCall {
	var calls []*llmprovider.FunctionCall
	for _, p := range msg.Parts {
		if p.FunctionCall != nil {
			calls = append(calls, p.FunctionCall)
		}
	}
	return calls
}

func textOf(msg llmprovider.Message) string {
	for _, p := range msg.Parts {
		if p.Text != "" {
			return p.Text
		}
	}
	return ""
}
