package main

import (
	"encoding/json"
	"os"

	// Packages
	chat "github.com/devtoolbox/go-chat"
	openai "github.com/devtoolbox/go-chat/pkg/openai"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type EmbeddingCmd struct {
	Text  string `arg:"" help:"Text to embed"`
	Model string `flag:"model" help:"Embedding model name"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *EmbeddingCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}

	opts := []chat.Opt{}
	if cmd.Model != "" {
		opts = append(opts, openai.WithEmbeddingModel(cmd.Model))
	}
	vector, err := c.Embedding(globals.ctx, cmd.Text, opts...)
	if err != nil {
		return err
	}
	return json.NewEncoder(os.Stdout).Encode(vector)
}
