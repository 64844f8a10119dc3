package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcom-assistant/pkg/gemini"
)

func TestNew_Validation(t *testing.T) {
	_, err := gemini.New(gemini.Config{})
	require.Error(t, err)

	client, err := gemini.New(gemini.Config{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, gemini.DefaultModel, client.Model())
}

func TestGenerateContent(t *testing.T) {
	t.Run("text reply with role mapping", func(t *testing.T) {
		var captured map[string]interface{}

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
			w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Hello"}]}}],
				"usageMetadata":{"promptTokenCount":10,"candidatesTokenCount":2,"totalTokenCount":12}}`))
		}))
		defer srv.Close()

		client, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: srv.URL})
		require.NoError(t, err)

		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "hi"}}},
				{Role: "assistant", Parts: []gemini.Part{{Text: "earlier reply"}}},
			},
		})
		require.NoError(t, err)

		require.Len(t, resp.Content.Parts, 1)
		assert.Equal(t, "Hello", resp.Content.Parts[0].Text)
		assert.Equal(t, 12, resp.Usage.TotalTokens)

		contents := captured["contents"].([]interface{})
		second := contents[1].(map[string]interface{})
		assert.Equal(t, "model", second["role"])
	})

	t.Run("function call parsed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[
				{"functionCall":{"name":"list_event_types","args":{}}}
			]}}]}`))
		}))
		defer srv.Close()

		client, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: srv.URL})
		require.NoError(t, err)

		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "what can I book?"}}}},
		})
		require.NoError(t, err)

		require.Len(t, resp.Content.Parts, 1)
		require.NotNil(t, resp.Content.Parts[0].FunctionCall)
		assert.Equal(t, "list_event_types", resp.Content.Parts[0].FunctionCall.Name)
	})

	t.Run("API error surfaces status and body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
		}))
		defer srv.Close()

		client, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: srv.URL})
		require.NoError(t, err)

		_, err = client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "hi"}}}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
		assert.Contains(t, err.Error(), "quota exceeded")
	})
}
