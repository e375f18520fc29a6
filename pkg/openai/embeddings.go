package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"

	chat "github.com/devtoolbox/go-chat"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultEmbeddingModel = "text-embedding-ada-002"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Embedding generates an embedding vector for a single text. Use
// WithEmbeddingModel to select a model other than the default.
func (c *Client) Embedding(ctx context.Context, text string, opts ...chat.Opt) ([]float64, error) {
	if text == "" {
		return nil, chat.ErrBadParameter.With("text is required")
	}

	// Apply per-call options
	opt, err := chat.ApplyOpts(opts...)
	if err != nil {
		return nil, err
	}
	model := opt.GetString("embedding_model")
	if model == "" {
		model = defaultEmbeddingModel
	}

	// Request
	payload, err := client.NewJSONRequest(struct {
		Model string `json:"model"`
		Input string `json:"input"`
	}{
		Model: model,
		Input: text,
	})
	if err != nil {
		return nil, err
	}

	// Response
	var response struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}
	if err := c.do(ctx, payload, &response, client.OptPath("embeddings")); err != nil {
		return nil, err
	}
	if len(response.Data) == 0 {
		return nil, chat.ErrBackend.With("empty embedding response")
	}

	// Return success
	return response.Data[0].Embedding, nil
}
