package openai

import (
	// Packages
	chat "github.com/devtoolbox/go-chat"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// The model used for embedding generation
func WithEmbeddingModel(v string) chat.Opt {
	return func(o *chat.Opts) error {
		if v == "" {
			return chat.ErrBadParameter.With("embedding model is required")
		}
		o.Set("embedding_model", v)
		return nil
	}
}
