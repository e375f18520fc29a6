package main

import (
	"fmt"

	// Packages
	chat "github.com/devtoolbox/go-chat"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type AskCmd struct {
	Prompt      string   `arg:"" help:"User prompt"`
	System      string   `flag:"system" help:"System prompt"`
	Temperature *float64 `flag:"temperature" short:"t" help:"Sampling temperature"`
	MaxTokens   *uint64  `flag:"max-tokens" help:"Maximum tokens to generate"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *AskCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}
	result, err := c.Ask(globals.ctx, cmd.System, cmd.Prompt, callOpts(cmd.Temperature, cmd.MaxTokens)...)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func callOpts(temperature *float64, maxTokens *uint64) []chat.Opt {
	opts := []chat.Opt{}
	if temperature != nil {
		opts = append(opts, chat.WithTemperature(*temperature))
	}
	if maxTokens != nil {
		opts = append(opts, chat.WithMaxTokens(*maxTokens))
	}
	return opts
}
