package openai

import (
	"context"
	"encoding/json"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"

	chat "github.com/devtoolbox/go-chat"
	config "github.com/devtoolbox/go-chat/pkg/config"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Request is a chat completion request in the OpenAI wire format
type Request struct {
	Model            string         `json:"model"`
	Messages         []chat.Message `json:"messages"`
	Temperature      float64        `json:"temperature"`
	MaxTokens        *uint64        `json:"max_tokens,omitempty"`
	TopP             float64        `json:"top_p,omitempty"`
	FrequencyPenalty float64        `json:"frequency_penalty,omitempty"`
	PresencePenalty  float64        `json:"presence_penalty,omitempty"`
	StopSequences    []string       `json:"stop,omitempty"`
}

// Response is a chat completion response
type Response struct {
	Id          string `json:"id"`
	Type        string `json:"object"`
	Created     uint64 `json:"created"`
	Model       string `json:"model"`
	Completions `json:"choices"`
	*Metrics    `json:"usage,omitempty"`
}

// Completion choices
type Completions []Completion

// Completion variation
type Completion struct {
	Index   uint64        `json:"index"`
	Message *chat.Message `json:"message"`
	Reason  string        `json:"finish_reason,omitempty"`
}

// Metrics reports token usage for one request
type Metrics struct {
	PromptTokens     uint64 `json:"prompt_tokens,omitempty"`
	CompletionTokens uint64 `json:"completion_tokens,omitempty"`
	TotalTokens      uint64 `json:"total_tokens,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewRequest builds a completion request from the resolved configuration,
// applying any per-call option overrides
func NewRequest(cfg config.Config, messages []chat.Message, opt *chat.Opts) Request {
	req := Request{
		Model:            cfg.Model,
		Messages:         messages,
		Temperature:      cfg.Temperature,
		MaxTokens:        cfg.MaxTokens,
		TopP:             opt.GetFloat64("top_p"),
		FrequencyPenalty: opt.GetFloat64("frequency_penalty"),
		PresencePenalty:  opt.GetFloat64("presence_penalty"),
		StopSequences:    opt.GetStringArray("stop"),
	}
	if opt.Has("temperature") {
		req.Temperature = opt.GetFloat64("temperature")
	}
	if opt.Has("max_tokens") {
		v := opt.GetUint64("max_tokens")
		req.MaxTokens = &v
	}
	return req
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Response) String() string {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Text returns the text of the first completion choice
func (r *Response) Text() (string, error) {
	if len(r.Completions) == 0 || r.Completions[0].Message == nil {
		return "", chat.ErrBackend.With("empty completion response")
	}
	return strings.TrimSpace(r.Completions[0].Message.Content), nil
}

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

// Chat sends a message exchange and returns the text reply
func (c *Client) Chat(ctx context.Context, messages []chat.Message, opts ...chat.Opt) (string, error) {
	response, err := c.ChatCompletion(ctx, messages, opts...)
	if err != nil {
		return "", err
	}
	return response.Text()
}

// ChatCompletion sends a message exchange and returns the full response,
// including token usage
func (c *Client) ChatCompletion(ctx context.Context, messages []chat.Message, opts ...chat.Opt) (*Response, error) {
	if len(messages) == 0 {
		return nil, chat.ErrBadParameter.With("at least one message is required")
	}

	// Apply per-call options
	opt, err := chat.ApplyOpts(opts...)
	if err != nil {
		return nil, err
	}

	// Request
	payload, err := client.NewJSONRequest(NewRequest(c.config, messages, opt))
	if err != nil {
		return nil, err
	}

	// Response
	var response Response
	if err := c.do(ctx, payload, &response, client.OptPath("chat", "completions")); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
