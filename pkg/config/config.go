/*
config resolves effective client configuration for a chat-completion
backend, merging explicit options, environment variables and profile
defaults with a fixed precedence: explicit > environment > default.
*/
package config

import (
	"encoding/json"
	"time"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config is the effective configuration for one backend client. It is
// built once by Resolve and immutable thereafter.
type Config struct {
	APIKey      string            `json:"-"`
	BaseURL     string            `json:"base_url"`
	Model       string            `json:"model"`
	Temperature float64           `json:"temperature"`
	MaxTokens   *uint64           `json:"max_tokens,omitempty"`
	Timeout     time.Duration     `json:"timeout"`
	MaxRetries  uint              `json:"max_retries"`
	Extra       map[string]string `json:"extra,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// The built-in defaults used when neither an explicit option nor an
	// environment variable provides a value
	DefaultTemperature = 0.0
	DefaultTimeout     = 60 * time.Second
	DefaultMaxRetries  = 3
)

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

// The API key is deliberately excluded from the string representation
func (c Config) String() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
