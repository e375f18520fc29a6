package azure

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"

	chat "github.com/devtoolbox/go-chat"
	openai "github.com/devtoolbox/go-chat/pkg/openai"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Ask sends a single system/user message pair and returns the text reply.
// The system prompt may be empty, in which case only the user message is
// sent. Nothing is retained between calls.
func (c *Client) Ask(ctx context.Context, system, human string, opts ...chat.Opt) (string, error) {
	if human == "" {
		return "", chat.ErrBadParameter.With("prompt is required")
	}
	messages := make([]chat.Message, 0, 2)
	if system != "" {
		messages = append(messages, chat.System(system))
	}
	messages = append(messages, chat.User(human))
	return c.Chat(ctx, messages, opts...)
}

// Complete generates a completion for a single user prompt
func (c *Client) Complete(ctx context.Context, prompt string, opts ...chat.Opt) (string, error) {
	if prompt == "" {
		return "", chat.ErrBadParameter.With("prompt is required")
	}
	return c.Chat(ctx, []chat.Message{chat.User(prompt)}, opts...)
}

// Chat sends a message exchange through the configured deployment and
// returns the text reply
func (c *Client) Chat(ctx context.Context, messages []chat.Message, opts ...chat.Opt) (string, error) {
	response, err := c.ChatCompletion(ctx, messages, opts...)
	if err != nil {
		return "", err
	}
	return response.Text()
}

// ChatCompletion sends a message exchange and returns the full response,
// including token usage
func (c *Client) ChatCompletion(ctx context.Context, messages []chat.Message, opts ...chat.Opt) (*openai.Response, error) {
	if len(messages) == 0 {
		return nil, chat.ErrBadParameter.With("at least one message is required")
	}

	// Apply per-call options
	opt, err := chat.ApplyOpts(opts...)
	if err != nil {
		return nil, err
	}

	// Request
	payload, err := client.NewJSONRequest(openai.NewRequest(c.config, messages, opt))
	if err != nil {
		return nil, err
	}

	// Response
	var response openai.Response
	if err := c.do(ctx, payload, &response, client.OptPath("deployments", c.deployment, "chat", "completions")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// Embedding generates an embedding vector through the configured
// deployment. The model is selected by the deployment, not the request.
func (c *Client) Embedding(ctx context.Context, text string, opts ...chat.Opt) ([]float64, error) {
	if text == "" {
		return nil, chat.ErrBadParameter.With("text is required")
	}

	// Request
	payload, err := client.NewJSONRequest(struct {
		Input string `json:"input"`
	}{
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
	if err := c.do(ctx, payload, &response, client.OptPath("deployments", c.deployment, "embeddings")); err != nil {
		return nil, err
	}
	if len(response.Data) == 0 {
		return nil, chat.ErrBackend.With("empty embedding response")
	}

	// Return success
	return response.Data[0].Embedding, nil
}

// Models returns the names of the models available from the resource
func (c *Client) Models(ctx context.Context) ([]string, error) {
	var response struct {
		Data []openai.Model `json:"data"`
	}
	if err := c.do(ctx, nil, &response, client.OptPath("models")); err != nil {
		return nil, err
	}
	result := make([]string, len(response.Data))
	for i, model := range response.Data {
		result[i] = model.Name
	}
	return result, nil
}
