/*
azure implements a client for the Azure OpenAI service
https://learn.microsoft.com/en-us/azure/ai-services/openai/reference

Azure speaks the same wire format as OpenAI but authenticates with an
api-key header, routes requests through a named deployment and requires
an api-version query parameter. The request and response types are shared
with the openai package.
*/
package azure

import (
	"context"
	"net/url"

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
	config     config.Config
	deployment string
	apiVersion string
}

var _ chat.Client = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultAPIVersion = "2024-10-01-preview"
)

// Profile is the Azure OpenAI backend profile. There is no default
// endpoint: the resource URL is account-specific and must be configured.
var Profile = config.Profile{
	Name:         "azure",
	EnvPrefix:    "AZURE_OPENAI",
	DefaultModel: "gpt-4",
	ExtraVars: map[string]string{
		"deployment":  "AZURE_OPENAI_DEPLOYMENT",
		"api_version": "AZURE_OPENAI_API_VERSION",
	},
	ExtraDefaults: map[string]string{
		"api_version": defaultAPIVersion,
	},
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the Azure OpenAI service, resolving
// configuration from the AZURE_OPENAI_* environment namespace
func New(opts ...config.Opt) (*Client, error) {
	cfg, err := config.Resolve(Profile, opts...)
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a client from an already-resolved configuration,
// with optional transport options (tracing, custom headers)
func NewWithConfig(cfg config.Config, opts ...client.ClientOpt) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, chat.ErrConfiguration.Withf("api key is required: set the %s environment variable", Profile.KeyEnv())
	}
	if cfg.BaseURL == "" {
		return nil, chat.ErrConfiguration.Withf("endpoint is required: set the %s environment variable", Profile.EndpointEnv())
	}
	deployment := cfg.Extra["deployment"]
	if deployment == "" {
		return nil, chat.ErrConfiguration.With("deployment is required: set the AZURE_OPENAI_DEPLOYMENT environment variable")
	}
	apiVersion := cfg.Extra["api_version"]
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}

	// Create the underlying HTTP client
	opts = append(opts,
		client.OptEndpoint(cfg.BaseURL),
		client.OptHeader("api-key", cfg.APIKey),
	)
	if cfg.Timeout > 0 {
		opts = append(opts, client.OptTimeout(cfg.Timeout))
	}
	c, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{c, cfg, deployment, apiVersion}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the backend name
func (c *Client) Name() string {
	return Profile.Name
}

// Config returns the resolved configuration
func (c *Client) Config() config.Config {
	return c.config
}

// Deployment returns the deployment name requests are routed through
func (c *Client) Deployment() string {
	return c.deployment
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Client) query() url.Values {
	return url.Values{"api-version": []string{c.apiVersion}}
}

// do performs one request with bounded retries, and wraps any terminal
// failure as a backend error
func (c *Client) do(ctx context.Context, payload client.Payload, out any, opts ...client.RequestOpt) error {
	opts = append(opts, client.OptQuery(c.query()))
	if err := retry.Do(ctx, c.config.MaxRetries, func() error {
		return c.DoWithContext(ctx, payload, out, opts...)
	}); err != nil {
		return chat.ErrBackend.With(err.Error())
	}
	return nil
}
