package config

import (
	"os"
	"strconv"
	"time"

	// Packages
	chat "github.com/devtoolbox/go-chat"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A resolver option, setting an explicit value which takes precedence
// over the environment and the profile defaults
type Opt func(*resolver) error

type resolver struct {
	environ     func(string) (string, bool)
	apiKey      *string
	baseURL     *string
	model       *string
	temperature *float64
	maxTokens   *uint64
	timeout     *time.Duration
	maxRetries  *uint
	extra       map[string]string
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Resolve computes the effective configuration for a profile. Each field
// is resolved independently with precedence explicit option > environment
// variable > built-in default. The resolved API key must be non-empty or
// resolution fails with a configuration error naming the missing
// environment variable; no network activity occurs during resolution.
func Resolve(profile Profile, opts ...Opt) (Config, error) {
	r := resolver{
		environ: os.LookupEnv,
		extra:   make(map[string]string),
	}
	for _, opt := range opts {
		if err := opt(&r); err != nil {
			return Config{}, err
		}
	}

	// API key: fail fast when absent
	config := Config{
		APIKey: r.stringValue(r.apiKey, profile.KeyEnv(), ""),
	}
	if config.APIKey == "" {
		return Config{}, chat.ErrConfiguration.Withf("api key is required: set the %s environment variable", profile.KeyEnv())
	}

	// Endpoint and model
	config.BaseURL = r.stringValue(r.baseURL, profile.EndpointEnv(), profile.DefaultEndpoint)
	config.Model = r.stringValue(r.model, profile.ModelEnv(), profile.DefaultModel)

	// Request parameters
	var err error
	if config.Temperature, err = r.floatValue(r.temperature, profile.EnvPrefix+"_TEMPERATURE", DefaultTemperature); err != nil {
		return Config{}, err
	}
	if config.MaxTokens, err = r.uint64Value(r.maxTokens, profile.EnvPrefix+"_MAX_TOKENS"); err != nil {
		return Config{}, err
	}
	if config.Timeout, err = r.secondsValue(r.timeout, profile.EnvPrefix+"_TIMEOUT", DefaultTimeout); err != nil {
		return Config{}, err
	}
	if config.MaxRetries, err = r.uintValue(r.maxRetries, profile.EnvPrefix+"_MAX_RETRIES", DefaultMaxRetries); err != nil {
		return Config{}, err
	}

	// Backend-specific settings
	if len(profile.ExtraVars) > 0 || len(profile.ExtraDefaults) > 0 || len(r.extra) > 0 {
		config.Extra = make(map[string]string, len(profile.ExtraVars))
		for key, name := range profile.ExtraVars {
			config.Extra[key] = r.extraValue(key, name, profile.ExtraDefaults[key])
		}
		for key, value := range r.extra {
			if _, exists := profile.ExtraVars[key]; !exists {
				config.Extra[key] = value
			}
		}
	}

	// Return success
	return config, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - SET OPTIONS

// Set the API key
func WithAPIKey(v string) Opt {
	return func(r *resolver) error {
		r.apiKey = &v
		return nil
	}
}

// Set the endpoint URL
func WithBaseURL(v string) Opt {
	return func(r *resolver) error {
		r.baseURL = &v
		return nil
	}
}

// Set the model name
func WithModel(v string) Opt {
	return func(r *resolver) error {
		r.model = &v
		return nil
	}
}

// Set the sampling temperature
func WithTemperature(v float64) Opt {
	return func(r *resolver) error {
		if v < 0.0 || v > 2.0 {
			return chat.ErrBadParameter.With("temperature must be between 0.0 and 2.0")
		}
		r.temperature = &v
		return nil
	}
}

// Set the maximum number of tokens per completion. When not set, the
// backend chooses a dynamic response length.
func WithMaxTokens(v uint64) Opt {
	return func(r *resolver) error {
		r.maxTokens = &v
		return nil
	}
}

// Set the request timeout
func WithTimeout(v time.Duration) Opt {
	return func(r *resolver) error {
		if v <= 0 {
			return chat.ErrBadParameter.With("timeout must be positive")
		}
		r.timeout = &v
		return nil
	}
}

// Set the number of retries for failed backend requests
func WithMaxRetries(v uint) Opt {
	return func(r *resolver) error {
		r.maxRetries = &v
		return nil
	}
}

// Set a backend-specific option, e.g. an Azure deployment name
func WithOption(key, value string) Opt {
	return func(r *resolver) error {
		if key == "" {
			return chat.ErrBadParameter.With("option key is required")
		}
		r.extra[key] = value
		return nil
	}
}

// WithEnviron sets the environment lookup function, which defaults to
// os.LookupEnv. Pass a map-backed function to resolve against a fixed
// environment.
func WithEnviron(fn func(string) (string, bool)) Opt {
	return func(r *resolver) error {
		if fn == nil {
			return chat.ErrBadParameter.With("environ lookup is required")
		}
		r.environ = fn
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (r *resolver) stringValue(explicit *string, name, deflt string) string {
	if explicit != nil {
		return *explicit
	}
	if value, exists := r.environ(name); exists && value != "" {
		return value
	}
	return deflt
}

func (r *resolver) extraValue(key, name, deflt string) string {
	if value, exists := r.extra[key]; exists {
		return value
	}
	if value, exists := r.environ(name); exists && value != "" {
		return value
	}
	return deflt
}

func (r *resolver) floatValue(explicit *float64, name string, deflt float64) (float64, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if value, exists := r.environ(name); exists && value != "" {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, chat.ErrConfiguration.Withf("%s: %v", name, err)
		}
		return v, nil
	}
	return deflt, nil
}

func (r *resolver) uint64Value(explicit *uint64, name string) (*uint64, error) {
	if explicit != nil {
		return explicit, nil
	}
	if value, exists := r.environ(name); exists && value != "" {
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, chat.ErrConfiguration.Withf("%s: %v", name, err)
		}
		return &v, nil
	}
	return nil, nil
}

func (r *resolver) uintValue(explicit *uint, name string, deflt uint) (uint, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if value, exists := r.environ(name); exists && value != "" {
		v, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return 0, chat.ErrConfiguration.Withf("%s: %v", name, err)
		}
		return uint(v), nil
	}
	return deflt, nil
}

// Timeouts in the environment are expressed in whole seconds
func (r *resolver) secondsValue(explicit *time.Duration, name string, deflt time.Duration) (time.Duration, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if value, exists := r.environ(name); exists && value != "" {
		v, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return 0, chat.ErrConfiguration.Withf("%s: %v", name, err)
		}
		return time.Duration(v) * time.Second, nil
	}
	return deflt, nil
}
