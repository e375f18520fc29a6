package chat

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// A generic option type, which can set per-call options on a request
type Opt func(*Opts) error

// set of options
type Opts struct {
	options map[string]any
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ApplyOpts returns a structure of applied options
func ApplyOpts(opts ...Opt) (*Opts, error) {
	o := new(Opts)
	o.options = make(map[string]any)
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (o Opts) String() string {
	data, err := json.Marshal(o.options)
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - PROPERTIES

// Set an option value
func (o *Opts) Set(key string, value any) {
	o.options[key] = value
}

// Has an option value
func (o *Opts) Has(key string) bool {
	_, exists := o.options[key]
	return exists
}

// Get an option value as a string
func (o *Opts) GetString(key string) string {
	if value, exists := o.options[key]; exists {
		if v, ok := value.(string); ok {
			return v
		}
	}
	return ""
}

// Get an option value as an unsigned integer
func (o *Opts) GetUint64(key string) uint64 {
	if value, exists := o.options[key]; exists {
		if v, ok := value.(uint64); ok {
			return v
		}
	}
	return 0
}

// Get an option value as a float64
func (o *Opts) GetFloat64(key string) float64 {
	if value, exists := o.options[key]; exists {
		if v, ok := value.(float64); ok {
			return v
		}
	}
	return 0
}

// Get an option value as a string array
func (o *Opts) GetStringArray(key string) []string {
	if value, exists := o.options[key]; exists {
		if v, ok := value.([]string); ok {
			return v
		}
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - SET OPTIONS

// The sampling temperature for this call, overriding the configured value.
// Increasing the temperature will make the model answer more creatively.
func WithTemperature(v float64) Opt {
	return func(o *Opts) error {
		if v < 0.0 || v > 2.0 {
			return ErrBadParameter.With("temperature must be between 0.0 and 2.0")
		}
		o.Set("temperature", v)
		return nil
	}
}

// The maximum number of tokens to generate for this call, overriding the
// configured value.
func WithMaxTokens(v uint64) Opt {
	return func(o *Opts) error {
		o.Set("max_tokens", v)
		return nil
	}
}

// Works together with top-k. A higher value (e.g., 0.95) will lead to more
// diverse text, while a lower value (e.g., 0.5) will generate more focused
// and conservative text.
func WithTopP(v float64) Opt {
	return func(o *Opts) error {
		if v < 0.0 || v > 1.0 {
			return ErrBadParameter.With("top_p must be between 0.0 and 1.0")
		}
		o.Set("top_p", v)
		return nil
	}
}

func WithPresencePenalty(v float64) Opt {
	return func(o *Opts) error {
		if v < -2 || v > 2 {
			return ErrBadParameter.With("presence_penalty")
		}
		o.Set("presence_penalty", v)
		return nil
	}
}

func WithFrequencyPenalty(v float64) Opt {
	return func(o *Opts) error {
		if v < -2 || v > 2 {
			return ErrBadParameter.With("frequency_penalty")
		}
		o.Set("frequency_penalty", v)
		return nil
	}
}

// Set stop sequence
func WithStopSequence(v ...string) Opt {
	return func(o *Opts) error {
		o.Set("stop", v)
		return nil
	}
}
