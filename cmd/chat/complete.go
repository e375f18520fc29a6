package main

import (
	"fmt"
	"io"
	"os"

	// Packages
	chat "github.com/devtoolbox/go-chat"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CompleteCmd struct {
	Prompt      string   `arg:"" optional:"" help:"Prompt"`
	Temperature *float64 `flag:"temperature" short:"t" help:"Sampling temperature"`
	MaxTokens   *uint64  `flag:"max-tokens" help:"Maximum tokens to generate"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *CompleteCmd) Run(globals *Globals) error {
	var prompt []byte

	// If we are piping content in via stdin
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return chat.ErrBadParameter.Withf("failed to stat stdin: %v", err)
	}
	if (fileInfo.Mode() & os.ModeCharDevice) == 0 {
		if data, err := io.ReadAll(os.Stdin); err != nil {
			return err
		} else if len(data) > 0 {
			prompt = data
		}
	}

	// Append any further prompt
	if len(cmd.Prompt) > 0 {
		if len(prompt) > 0 {
			prompt = append(prompt, []byte("\n\n")...)
		}
		prompt = append(prompt, []byte(cmd.Prompt)...)
	}
	if len(prompt) == 0 {
		return chat.ErrBadParameter.With("prompt is required")
	}

	c, err := globals.Client()
	if err != nil {
		return err
	}
	result, err := c.Complete(globals.ctx, string(prompt), callOpts(cmd.Temperature, cmd.MaxTokens)...)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}
