package config

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Profile describes one backend variant: its environment-variable
// namespace and its built-in defaults. A specialized backend is a
// Profile value, not a subtype; the same facade is parameterized by
// whichever profile it is constructed with.
type Profile struct {
	// Backend name, e.g. "openai" or "deepseek"
	Name string `yaml:"name"`

	// Environment variable prefix, e.g. "OPENAI". Unless overridden
	// below, the key, endpoint and model variables are derived as
	// <prefix>_API_KEY, <prefix>_API_BASE and <prefix>_MODEL
	EnvPrefix string `yaml:"env_prefix"`

	// Overrides for the derived variable names
	KeyVar      string `yaml:"key_var,omitempty"`
	EndpointVar string `yaml:"endpoint_var,omitempty"`
	ModelVar    string `yaml:"model_var,omitempty"`

	// Defaults when no explicit option or environment variable is set
	DefaultEndpoint string `yaml:"endpoint"`
	DefaultModel    string `yaml:"model"`

	// Backend-specific settings resolved into Config.Extra, keyed by
	// option name with the environment variable to read it from
	ExtraVars     map[string]string `yaml:"-"`
	ExtraDefaults map[string]string `yaml:"-"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// KeyEnv returns the name of the environment variable holding the API key
func (p Profile) KeyEnv() string {
	if p.KeyVar != "" {
		return p.KeyVar
	}
	return p.EnvPrefix + "_API_KEY"
}

// EndpointEnv returns the name of the environment variable holding the
// endpoint URL
func (p Profile) EndpointEnv() string {
	if p.EndpointVar != "" {
		return p.EndpointVar
	}
	return p.EnvPrefix + "_API_BASE"
}

// ModelEnv returns the name of the environment variable holding the
// model name
func (p Profile) ModelEnv() string {
	if p.ModelVar != "" {
		return p.ModelVar
	}
	return p.EnvPrefix + "_MODEL"
}
