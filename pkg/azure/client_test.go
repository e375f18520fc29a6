package azure_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"

	chat "github.com/devtoolbox/go-chat"
	azure "github.com/devtoolbox/go-chat/pkg/azure"
	config "github.com/devtoolbox/go-chat/pkg/config"
	openai "github.com/devtoolbox/go-chat/pkg/openai"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// environ returns a lookup function over a fixed environment
func environ(env map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		value, exists := env[name]
		return value, exists
	}
}

func newTestClient(t *testing.T, handler http.Handler) *azure.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := azure.New(
		config.WithEnviron(environ(map[string]string{
			"AZURE_OPENAI_API_KEY":    "secret",
			"AZURE_OPENAI_DEPLOYMENT": "prod",
		})),
		config.WithBaseURL(server.URL),
		config.WithMaxRetries(0),
	)
	if err != nil {
		t.Fatal(err)
	}
	return client
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestNewMissingConfiguration(t *testing.T) {
	assert := assert.New(t)

	t.Run("Key", func(t *testing.T) {
		_, err := azure.New(config.WithEnviron(environ(nil)))
		assert.True(errors.Is(err, chat.ErrConfiguration))
		assert.Contains(err.Error(), "AZURE_OPENAI_API_KEY")
	})

	t.Run("Endpoint", func(t *testing.T) {
		_, err := azure.New(config.WithEnviron(environ(map[string]string{
			"AZURE_OPENAI_API_KEY":    "secret",
			"AZURE_OPENAI_DEPLOYMENT": "prod",
		})))
		assert.True(errors.Is(err, chat.ErrConfiguration))
		assert.Contains(err.Error(), "AZURE_OPENAI_API_BASE")
	})

	t.Run("Deployment", func(t *testing.T) {
		_, err := azure.New(config.WithEnviron(environ(map[string]string{
			"AZURE_OPENAI_API_KEY":  "secret",
			"AZURE_OPENAI_API_BASE": "https://example.openai.azure.com",
		})))
		assert.True(errors.Is(err, chat.ErrConfiguration))
		assert.Contains(err.Error(), "AZURE_OPENAI_DEPLOYMENT")
	})
}

func TestNewFromEnvironment(t *testing.T) {
	assert := assert.New(t)
	client, err := azure.New(config.WithEnviron(environ(map[string]string{
		"AZURE_OPENAI_API_KEY":    "secret",
		"AZURE_OPENAI_API_BASE":   "https://example.openai.azure.com",
		"AZURE_OPENAI_DEPLOYMENT": "prod",
	})))
	assert.NoError(err)
	assert.Equal("azure", client.Name())
	assert.Equal("prod", client.Deployment())
	assert.Equal("gpt-4", client.Config().Model)
	assert.Equal("2024-10-01-preview", client.Config().Extra["api_version"])
}

// Requests route through the deployment path with the api-version query
// and the api-key header
func TestAsk(t *testing.T) {
	assert := assert.New(t)
	var request openai.Request
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/deployments/prod/chat/completions", r.URL.Path)
		assert.Equal("2024-10-01-preview", r.URL.Query().Get("api-version"))
		assert.Equal("secret", r.Header.Get("api-key"))
		assert.Empty(r.Header.Get("Authorization"))
		assert.NoError(json.NewDecoder(r.Body).Decode(&request))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-4",
			"choices": []map[string]any{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": "hello"}, "finish_reason": "stop"},
			},
		})
	}))

	result, err := client.Ask(context.Background(), "be brief", "hi")
	assert.NoError(err)
	assert.Equal("hello", result)
	assert.Equal("gpt-4", request.Model)
	if assert.Len(request.Messages, 2) {
		assert.Equal(chat.SystemRole, request.Messages[0].Role)
		assert.Equal(chat.UserRole, request.Messages[1].Role)
	}
}

func TestEmbedding(t *testing.T) {
	assert := assert.New(t)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/deployments/prod/embeddings", r.URL.Path)
		assert.Equal("2024-10-01-preview", r.URL.Query().Get("api-version"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float64{0.5, 0.25}}},
		})
	}))
	vector, err := client.Embedding(context.Background(), "hello")
	assert.NoError(err)
	assert.Equal([]float64{0.5, 0.25}, vector)
}

func TestBackendError(t *testing.T) {
	assert := assert.New(t)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))
	_, err := client.Ask(context.Background(), "", "hi")
	assert.True(errors.Is(err, chat.ErrBackend))
}
