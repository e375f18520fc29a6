package config_test

import (
	"errors"
	"strings"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"

	chat "github.com/devtoolbox/go-chat"
	config "github.com/devtoolbox/go-chat/pkg/config"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestLoadProfiles(t *testing.T) {
	assert := assert.New(t)
	profiles, err := config.LoadProfiles(strings.NewReader(`
- name: local
  env_prefix: LOCAL
  endpoint: http://localhost:8080/v1
  model: llama3
- name: corp
  env_prefix: CORP
  endpoint_var: CORP_GATEWAY_URL
  endpoint: https://gateway.corp.local/v1
  model: gpt-4o-mini
`))
	assert.NoError(err)
	if assert.Len(profiles, 2) {
		assert.Equal("local", profiles[0].Name)
		assert.Equal("LOCAL", profiles[0].EnvPrefix)
		assert.Equal("http://localhost:8080/v1", profiles[0].DefaultEndpoint)
		assert.Equal("llama3", profiles[0].DefaultModel)
		assert.Equal("LOCAL_API_KEY", profiles[0].KeyEnv())

		assert.Equal("corp", profiles[1].Name)
		assert.Equal("CORP_GATEWAY_URL", profiles[1].EndpointEnv())
		assert.Equal("gpt-4o-mini", profiles[1].DefaultModel)
	}
}

func TestLoadProfilesInvalid(t *testing.T) {
	assert := assert.New(t)

	t.Run("BadYAML", func(t *testing.T) {
		_, err := config.LoadProfiles(strings.NewReader(`{not yaml`))
		assert.Error(err)
		assert.True(errors.Is(err, chat.ErrConfiguration))
	})

	t.Run("MissingName", func(t *testing.T) {
		_, err := config.LoadProfiles(strings.NewReader(`
- env_prefix: LOCAL
  endpoint: http://localhost:8080/v1
`))
		assert.True(errors.Is(err, chat.ErrConfiguration))
	})

	t.Run("MissingPrefix", func(t *testing.T) {
		_, err := config.LoadProfiles(strings.NewReader(`
- name: local
  endpoint: http://localhost:8080/v1
`))
		assert.True(errors.Is(err, chat.ErrConfiguration))
	})

	t.Run("MissingEndpoint", func(t *testing.T) {
		_, err := config.LoadProfiles(strings.NewReader(`
- name: local
  env_prefix: LOCAL
`))
		assert.True(errors.Is(err, chat.ErrConfiguration))
	})
}
