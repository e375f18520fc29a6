package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	// Packages
	kong "github.com/alecthomas/kong"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Backend selection
	Provider string `name:"provider" env:"CHAT_PROVIDER" default:"openai" help:"Backend provider (openai, deepseek, azure or a profile name)"`
	Profiles string `name:"profiles" type:"path" optional:"" help:"YAML file with additional OpenAI-compatible providers"`

	// Context
	ctx context.Context
}

type CLI struct {
	Globals

	// Commands
	Ask       AskCmd       `cmd:"" help:"Send a system/user prompt pair and print the reply"`
	Complete  CompleteCmd  `cmd:"" help:"Complete a prompt"`
	Chat      ChatCmd      `cmd:"" help:"Read prompts from stdin, one exchange per line"`
	Models    ModelsCmd    `cmd:"" help:"List models from the configured providers"`
	Embedding EmbeddingCmd `cmd:"" help:"Generate an embedding vector for a text"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Chat completion command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	}
	return filepath.Base(name)
}
