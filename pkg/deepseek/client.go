/*
deepseek implements an API client for DeepSeek
https://api-docs.deepseek.com/

DeepSeek exposes an OpenAI-compatible API, so the client is the openai
facade parameterized with the DeepSeek profile: only the credential
namespace and the default endpoint and model differ.
*/
package deepseek

import (
	// Packages
	config "github.com/devtoolbox/go-chat/pkg/config"
	openai "github.com/devtoolbox/go-chat/pkg/openai"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client = openai.Client

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Profile is the DeepSeek backend profile. The endpoint variable is
// DEEPSEEK_API_ENDPOINT rather than the derived DEEPSEEK_API_BASE.
var Profile = config.Profile{
	Name:            "deepseek",
	EnvPrefix:       "DEEPSEEK",
	EndpointVar:     "DEEPSEEK_API_ENDPOINT",
	DefaultEndpoint: "https://api.deepseek.com/v1",
	DefaultModel:    "deepseek-chat",
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the DeepSeek API, resolving configuration from
// the DEEPSEEK_* environment namespace. All other behavior is shared with
// the openai client.
func New(opts ...config.Opt) (*Client, error) {
	return openai.NewWithProfile(Profile, opts...)
}
