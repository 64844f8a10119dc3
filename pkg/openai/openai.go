package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// newOpenAIImpl creates a new OpenAI implementation.
func newOpenAIImpl(cfg Config) *openaiImpl {
	return &openaiImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a generation request to the OpenAI API.
func (o *openaiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	wireReq := o.transformRequest(req)

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var wireResp wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wireResp); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}

	return o.transformResponse(&wireResp), nil
}

// Model returns the model being used.
func (o *openaiImpl) Model() string {
	return o.model
}

// transformRequest converts the normalized request to chat-completions format.
func (o *openaiImpl) transformRequest(req *Request) *wireRequest {
	wireReq := &wireRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]wireMessage, 0),
	}

	if req.SystemInstruction != nil {
		for _, systemMsg := range transformMessage(req.SystemInstruction) {
			systemMsg.Role = "system"
			wireReq.Messages = append(wireReq.Messages, systemMsg)
		}
	}

	for i := range req.Messages {
		wireReq.Messages = append(wireReq.Messages, transformMessage(&req.Messages[i])...)
	}

	if len(req.Tools) > 0 {
		wireReq.Tools = make([]wireTool, len(req.Tools))
		for i, tool := range req.Tools {
			wireReq.Tools[i] = wireTool{
				Type: "function",
				Function: wireFunctionDecl{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  tool.Parameters,
				},
			}
		}
		wireReq.ToolChoice = "auto"
	}

	return wireReq
}

// transformMessage converts one normalized message to chat-completions format.
// The API requires a separate tool message per tool_call_id, so a message
// carrying several function responses fans out into one wire message each.
func transformMessage(msg *Content) []wireMessage {
	wireMsg := wireMessage{Role: msg.Role}
	var toolMsgs []wireMessage

	for _, part := range msg.Parts {
		if part.Text != "" {
			if wireMsg.Content != "" {
				wireMsg.Content += "\n"
			}
			wireMsg.Content += part.Text
		}

		if part.FunctionCall != nil {
			argsJSON, _ := json.Marshal(part.FunctionCall.Args)
			id := part.FunctionCall.ID
			if id == "" {
				id = "call_" + part.FunctionCall.Name
			}
			wireMsg.Role = "assistant"
			wireMsg.ToolCalls = append(wireMsg.ToolCalls, wireToolCall{
				ID:   id,
				Type: "function",
				Function: wireFunctionCall{
					Name:      part.FunctionCall.Name,
					Arguments: string(argsJSON),
				},
			})
		}

		if part.FunctionResponse != nil {
			id := part.FunctionResponse.ID
			if id == "" {
				id = "call_" + part.FunctionResponse.Name
			}
			responseJSON, _ := json.Marshal(part.FunctionResponse.Response)
			toolMsgs = append(toolMsgs, wireMessage{
				Role:       "tool",
				ToolCallID: id,
				Content:    string(responseJSON),
			})
		}
	}

	if wireMsg.Content == "" && len(wireMsg.ToolCalls) == 0 && len(toolMsgs) > 0 {
		return toolMsgs
	}

	return append([]wireMessage{wireMsg}, toolMsgs...)
}

// transformResponse converts a chat-completions response to the normalized format.
func (o *openaiImpl) transformResponse(resp *wireResponse) *Response {
	usage := &Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}

	if len(resp.Choices) == 0 {
		return &Response{Usage: usage}
	}

	choice := resp.Choices[0]
	message := Content{
		Role:  choice.Message.Role,
		Parts: make([]Part, 0),
	}

	if choice.Message.Content != "" {
		message.Parts = append(message.Parts, Part{Text: choice.Message.Content})
	}

	for _, toolCall := range choice.Message.ToolCalls {
		if toolCall.Type != "function" {
			continue
		}
		var args map[string]interface{}
		if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &args); err != nil {
			args = make(map[string]interface{})
		}
		message.Parts = append(message.Parts, Part{
			FunctionCall: &FunctionCall{
				ID:   toolCall.ID,
				Name: toolCall.Function.Name,
				Args: args,
			},
		})
	}

	return &Response{Content: message, Usage: usage}
}
