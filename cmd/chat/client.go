package main

import (
	"errors"
	"fmt"
	"os"

	// Packages
	client "github.com/mutablelogic/go-client"
	term "golang.org/x/term"

	chat "github.com/devtoolbox/go-chat"
	azure "github.com/devtoolbox/go-chat/pkg/azure"
	config "github.com/devtoolbox/go-chat/pkg/config"
	deepseek "github.com/devtoolbox/go-chat/pkg/deepseek"
	openai "github.com/devtoolbox/go-chat/pkg/openai"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns a client for the selected provider. When the API key is
// missing and stdin is a terminal, the key is prompted for interactively.
func (g *Globals) Client() (chat.Client, error) {
	profile, err := g.profile()
	if err != nil {
		return nil, err
	}
	return g.newClient(profile, nil)
}

// Clients returns one client for each provider whose credentials resolve,
// for commands that operate across providers
func (g *Globals) Clients() ([]chat.Client, error) {
	profiles := []config.Profile{openai.Profile, deepseek.Profile, azure.Profile}
	if g.Profiles != "" {
		extra, err := config.LoadProfilesFile(g.Profiles)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, extra...)
	}

	var result []chat.Client
	for _, profile := range profiles {
		c, err := g.newClient(profile, nil)
		if errors.Is(err, chat.ErrConfiguration) {
			// Provider not configured, skip it
			continue
		} else if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if len(result) == 0 {
		return nil, chat.ErrConfiguration.With("no provider is configured")
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Globals) profile() (config.Profile, error) {
	switch g.Provider {
	case openai.Profile.Name:
		return openai.Profile, nil
	case deepseek.Profile.Name:
		return deepseek.Profile, nil
	case azure.Profile.Name:
		return azure.Profile, nil
	}

	// Fall back to the profiles file
	if g.Profiles != "" {
		profiles, err := config.LoadProfilesFile(g.Profiles)
		if err != nil {
			return config.Profile{}, err
		}
		for _, profile := range profiles {
			if profile.Name == g.Provider {
				return profile, nil
			}
		}
	}
	return config.Profile{}, chat.ErrNotFound.Withf("provider %q", g.Provider)
}

func (g *Globals) newClient(profile config.Profile, opts []config.Opt) (chat.Client, error) {
	cfg, err := config.Resolve(profile, opts...)
	if errors.Is(err, chat.ErrConfiguration) && g.Provider == profile.Name {
		// Prompt for the key when the selected provider has none
		if key, ok := readKey(profile); ok {
			cfg, err = config.Resolve(profile, append(opts, config.WithAPIKey(key))...)
		}
	}
	if err != nil {
		return nil, err
	}

	if profile.Name == azure.Profile.Name {
		return azure.NewWithConfig(cfg, g.clientOpts()...)
	}
	return openai.NewWithConfig(profile, cfg, g.clientOpts()...)
}

func (g *Globals) clientOpts() []client.ClientOpt {
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	return opts
}

// readKey prompts for an API key without echo. Returns false when stdin
// is not a terminal or nothing was entered.
func readKey(profile config.Profile) (string, bool) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", false
	}
	fmt.Fprintf(os.Stderr, "%s: ", profile.KeyEnv())
	data, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}
