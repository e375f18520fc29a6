package config

import (
	"io"
	"os"

	// Packages
	chat "github.com/devtoolbox/go-chat"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// LoadProfiles reads additional backend profiles from a YAML document,
// for self-hosted OpenAI-compatible deployments. Each profile requires a
// name, an environment prefix and a default endpoint.
func LoadProfiles(r io.Reader) ([]Profile, error) {
	var profiles []Profile
	if err := yaml.NewDecoder(r).Decode(&profiles); err != nil {
		return nil, chat.ErrConfiguration.Withf("profiles: %v", err)
	}
	for _, profile := range profiles {
		if profile.Name == "" {
			return nil, chat.ErrConfiguration.With("profiles: name is required")
		}
		if profile.EnvPrefix == "" {
			return nil, chat.ErrConfiguration.Withf("profiles: %s: env_prefix is required", profile.Name)
		}
		if profile.DefaultEndpoint == "" {
			return nil, chat.ErrConfiguration.Withf("profiles: %s: endpoint is required", profile.Name)
		}
	}
	return profiles, nil
}

// LoadProfilesFile reads additional backend profiles from a YAML file
func LoadProfilesFile(path string) ([]Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chat.ErrConfiguration.Withf("profiles: %v", err)
	}
	defer f.Close()
	return LoadProfiles(f)
}
