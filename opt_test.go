package chat_test

import (
	"errors"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"

	chat "github.com/devtoolbox/go-chat"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestApplyEmpty(t *testing.T) {
	assert := assert.New(t)
	opts, err := chat.ApplyOpts()
	assert.NoError(err)
	assert.NotNil(opts)
	assert.False(opts.Has("temperature"))
}

func TestTemperatureOption(t *testing.T) {
	assert := assert.New(t)

	t.Run("Valid", func(t *testing.T) {
		opts, err := chat.ApplyOpts(chat.WithTemperature(0.7))
		assert.NoError(err)
		assert.True(opts.Has("temperature"))
		assert.Equal(0.7, opts.GetFloat64("temperature"))
	})

	t.Run("TooHigh", func(t *testing.T) {
		_, err := chat.ApplyOpts(chat.WithTemperature(2.5))
		assert.True(errors.Is(err, chat.ErrBadParameter))
	})

	t.Run("TooLow", func(t *testing.T) {
		_, err := chat.ApplyOpts(chat.WithTemperature(-0.1))
		assert.True(errors.Is(err, chat.ErrBadParameter))
	})
}

func TestMaxTokensOption(t *testing.T) {
	assert := assert.New(t)
	opts, err := chat.ApplyOpts(chat.WithMaxTokens(1024))
	assert.NoError(err)
	assert.Equal(uint64(1024), opts.GetUint64("max_tokens"))
}

func TestStopSequenceOption(t *testing.T) {
	assert := assert.New(t)
	opts, err := chat.ApplyOpts(chat.WithStopSequence("a", "b"))
	assert.NoError(err)
	assert.Equal([]string{"a", "b"}, opts.GetStringArray("stop"))
}

func TestPenaltyOptions(t *testing.T) {
	assert := assert.New(t)

	t.Run("Valid", func(t *testing.T) {
		opts, err := chat.ApplyOpts(
			chat.WithPresencePenalty(0.5),
			chat.WithFrequencyPenalty(-0.5),
			chat.WithTopP(0.9),
		)
		assert.NoError(err)
		assert.Equal(0.5, opts.GetFloat64("presence_penalty"))
		assert.Equal(-0.5, opts.GetFloat64("frequency_penalty"))
		assert.Equal(0.9, opts.GetFloat64("top_p"))
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := chat.ApplyOpts(chat.WithFrequencyPenalty(3))
		assert.True(errors.Is(err, chat.ErrBadParameter))
		_, err = chat.ApplyOpts(chat.WithTopP(1.5))
		assert.True(errors.Is(err, chat.ErrBadParameter))
	})
}
