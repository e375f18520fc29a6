/*
service provides a higher-level interface over a single chat client:
context-prepended exchanges, fallback exchanges and sequential prompt
chains. Each operation is wrapped in a trace span.
*/
package service

import (
	"context"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"

	chat "github.com/devtoolbox/go-chat"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Service struct {
	client chat.Client
	tracer trace.Tracer
}

// Opt is a functional option for configuring a service
type Opt func(*Service) error

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a service over a single backend client
func New(client chat.Client, opts ...Opt) (*Service, error) {
	if client == nil {
		return nil, chat.ErrBadParameter.With("client is required")
	}
	s := &Service{
		client: client,
		tracer: noop.NewTracerProvider().Tracer("go-chat"),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithTracer sets the tracer used to create request spans
func WithTracer(tracer trace.Tracer) Opt {
	return func(s *Service) error {
		if tracer == nil {
			return chat.ErrBadParameter.With("tracer is required")
		}
		s.tracer = tracer
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns the wrapped backend client
func (s *Service) Client() chat.Client {
	return s.client
}

// Chat sends a message exchange and returns the text reply
func (s *Service) Chat(ctx context.Context, messages []chat.Message, opts ...chat.Opt) (result string, err error) {
	ctx, endSpan := otel.StartSpan(s.tracer, ctx, "Chat",
		attribute.String("client", s.client.Name()),
	)
	defer func() { endSpan(err) }()

	return s.client.Chat(ctx, messages, opts...)
}

// ChatWithContext prepends conversation context to the messages before
// sending the exchange
func (s *Service) ChatWithContext(ctx context.Context, messages, background []chat.Message, opts ...chat.Opt) (result string, err error) {
	ctx, endSpan := otel.StartSpan(s.tracer, ctx, "ChatWithContext",
		attribute.String("client", s.client.Name()),
	)
	defer func() { endSpan(err) }()

	full := make([]chat.Message, 0, len(background)+len(messages))
	full = append(full, background...)
	full = append(full, messages...)
	return s.client.Chat(ctx, full, opts...)
}

// ChatWithFallback sends the main exchange first, and sends the fallback
// exchange when the main one fails
func (s *Service) ChatWithFallback(ctx context.Context, messages, fallback []chat.Message, opts ...chat.Opt) (result string, err error) {
	ctx, endSpan := otel.StartSpan(s.tracer, ctx, "ChatWithFallback",
		attribute.String("client", s.client.Name()),
	)
	defer func() { endSpan(err) }()

	if result, err := s.client.Chat(ctx, messages, opts...); err == nil {
		return result, nil
	}
	return s.client.Chat(ctx, fallback, opts...)
}

// Complete generates a completion for a single user prompt
func (s *Service) Complete(ctx context.Context, prompt string, opts ...chat.Opt) (result string, err error) {
	ctx, endSpan := otel.StartSpan(s.tracer, ctx, "Complete",
		attribute.String("client", s.client.Name()),
	)
	defer func() { endSpan(err) }()

	return s.client.Complete(ctx, prompt, opts...)
}

// Embed generates an embedding vector for a single text
func (s *Service) Embed(ctx context.Context, text string, opts ...chat.Opt) (result []float64, err error) {
	ctx, endSpan := otel.StartSpan(s.tracer, ctx, "Embed",
		attribute.String("client", s.client.Name()),
	)
	defer func() { endSpan(err) }()

	return s.client.Embedding(ctx, text, opts...)
}
