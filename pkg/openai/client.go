/*
openai implements a client for OpenAI-compatible chat completion APIs.
https://platform.openai.com/docs/api-reference

The same client type serves any backend speaking the OpenAI wire format;
specialized backends such as DeepSeek supply their own config.Profile
rather than their own client type.
*/
package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"

	chat "github.com/devtoolbox/go-chat"
	config "github.com/devtoolbox/go-chat/pkg/config"
	retry "github.com/devtoolbox/go-chat/pkg/internal/retry"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	profile config.Profile
	config  config.Config
}

var _ chat.Client = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Profile is the generic OpenAI backend profile
var Profile = config.Profile{
	Name:            "openai",
	EnvPrefix:       "OPENAI",
	DefaultEndpoint: "https://api.openai.com/v1",
	DefaultModel:    "gpt-4o-mini",
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the OpenAI API, resolving configuration from
// the OPENAI_* environment namespace
func New(opts ...config.Opt) (*Client, error) {
	return NewWithProfile(Profile, opts...)
}

// NewWithProfile creates a client for any OpenAI-compatible backend
// described by the profile. Construction validation and request behavior
// are identical for every profile.
func NewWithProfile(profile config.Profile, opts ...config.Opt) (*Client, error) {
	cfg, err := config.Resolve(profile, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(profile, cfg)
}

// NewWithConfig creates a client from an already-resolved configuration,
// with optional transport options (tracing, custom headers)
func NewWithConfig(profile config.Profile, cfg config.Config, opts ...client.ClientOpt) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, chat.ErrConfiguration.Withf("api key is required: set the %s environment variable", profile.KeyEnv())
	}
	if cfg.BaseURL == "" {
		return nil, chat.ErrConfiguration.Withf("endpoint is required: set the %s environment variable", profile.EndpointEnv())
	}

	// Create the underlying HTTP client
	opts = append(opts,
		client.OptEndpoint(cfg.BaseURL),
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: cfg.APIKey}),
	)
	if cfg.Timeout > 0 {
		opts = append(opts, client.OptTimeout(cfg.Timeout))
	}
	c, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{c, profile, cfg}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the backend name
func (c *Client) Name() string {
	return c.profile.Name
}

// Config returns the resolved configuration
func (c *Client) Config() config.Config {
	return c.config
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// do performs one request with bounded retries, and wraps any terminal
// failure as a backend error
func (c *Client) do(ctx context.Context, payload client.Payload, out any, opts ...client.RequestOpt) error {
	if err := retry.Do(ctx, c.config.MaxRetries, func() error {
		return c.DoWithContext(ctx, payload, out, opts...)
	}); err != nil {
		return chat.ErrBackend.With(err.Error())
	}
	return nil
}
