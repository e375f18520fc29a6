package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	// Packages
	term "golang.org/x/term"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	System      string   `flag:"system" help:"System prompt applied to every exchange"`
	Temperature *float64 `flag:"temperature" short:"t" help:"Sampling temperature"`
	MaxTokens   *uint64  `flag:"max-tokens" help:"Maximum tokens to generate"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Each line is an independent exchange: no history is carried between
// them
func (cmd *ChatCmd) Run(globals *Globals) error {
	c, err := globals.Client()
	if err != nil {
		return err
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	opts := callOpts(cmd.Temperature, cmd.MaxTokens)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			break
		}
		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			continue
		}
		result, err := c.Ask(globals.ctx, cmd.System, prompt, opts...)
		if err != nil {
			return err
		}
		fmt.Println(result)
	}
	return scanner.Err()
}
