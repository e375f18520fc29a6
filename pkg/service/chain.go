package service

import (
	"context"
	"strings"
	"text/template"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"

	chat "github.com/devtoolbox/go-chat"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Prompt is one named step in a prompt chain. The template is a
// text/template body whose variables are the initial variables plus the
// outputs of earlier steps, e.g. "Summarize this content: {{.content}}"
type Prompt struct {
	Name     string
	Template string
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ChainPrompts executes the prompts sequentially. Each step's output is
// stored under its name and becomes a variable for later templates. The
// chain stops at the first failing step.
func (s *Service) ChainPrompts(ctx context.Context, prompts []Prompt, vars map[string]string, opts ...chat.Opt) (result map[string]string, err error) {
	ctx, endSpan := otel.StartSpan(s.tracer, ctx, "ChainPrompts",
		attribute.String("client", s.client.Name()),
		attribute.Int("prompts", len(prompts)),
	)
	defer func() { endSpan(err) }()

	// Copy the initial variables so the caller's map is not modified
	variables := make(map[string]string, len(vars)+len(prompts))
	for key, value := range vars {
		variables[key] = value
	}

	result = make(map[string]string, len(prompts))
	for _, prompt := range prompts {
		if prompt.Name == "" {
			return nil, chat.ErrBadParameter.With("prompt name is required")
		}

		// Expand the template with the current variables
		text, err := expand(prompt.Name, prompt.Template, variables)
		if err != nil {
			return nil, err
		}

		// Get the completion and feed it forward
		output, err := s.client.Complete(ctx, text, opts...)
		if err != nil {
			return nil, err
		}
		result[prompt.Name] = output
		variables[prompt.Name] = output
	}

	// Return success
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func expand(name, body string, variables map[string]string) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(body)
	if err != nil {
		return "", chat.ErrBadParameter.Withf("%s: %v", name, err)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", chat.ErrBadParameter.Withf("%s: %v", name, err)
	}
	return buf.String(), nil
}
