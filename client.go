/*
chat provides thin client facades over hosted chat-completion APIs.

Each backend (OpenAI, DeepSeek, Azure OpenAI, or any OpenAI-compatible
deployment) is exposed through the same Client interface: construct a
client once from resolved configuration, then call Ask any number of
times. Every call is an independent, stateless request/response round
trip; no prompt or response is retained between calls.
*/
package chat

import (
	"context"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the interface that wraps a chat-completion backend
type Client interface {
	// Return the backend name
	Name() string

	// Ask sends a single system/user message pair and returns the
	// text reply
	Ask(ctx context.Context, system, human string, opts ...Opt) (string, error)

	// Complete generates a completion for a single user prompt
	Complete(ctx context.Context, prompt string, opts ...Opt) (string, error)

	// Chat sends a message exchange and returns the text reply
	Chat(ctx context.Context, messages []Message, opts ...Opt) (string, error)

	// Embedding generates an embedding vector for a single text
	Embedding(ctx context.Context, text string, opts ...Opt) ([]float64, error)

	// Models returns the names of the models available from the backend
	Models(ctx context.Context) ([]string, error)
}
