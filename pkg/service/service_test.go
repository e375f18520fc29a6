package service_test

import (
	"context"
	"errors"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"

	chat "github.com/devtoolbox/go-chat"
	service "github.com/devtoolbox/go-chat/pkg/service"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// stub is an in-memory backend which records calls and replays scripted
// replies
type stub struct {
	exchanges [][]chat.Message
	prompts   []string
	replies   []string
	errs      []error
	calls     int
}

var _ chat.Client = (*stub)(nil)

func (s *stub) Name() string {
	return "stub"
}

func (s *stub) next() (string, error) {
	call := s.calls
	s.calls++
	var err error
	if call < len(s.errs) {
		err = s.errs[call]
	}
	var reply string
	if call < len(s.replies) {
		reply = s.replies[call]
	}
	return reply, err
}

func (s *stub) Chat(ctx context.Context, messages []chat.Message, opts ...chat.Opt) (string, error) {
	s.exchanges = append(s.exchanges, messages)
	return s.next()
}

func (s *stub) Ask(ctx context.Context, system, human string, opts ...chat.Opt) (string, error) {
	return s.Chat(ctx, []chat.Message{chat.System(system), chat.User(human)}, opts...)
}

func (s *stub) Complete(ctx context.Context, prompt string, opts ...chat.Opt) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.next()
}

func (s *stub) Embedding(ctx context.Context, text string, opts ...chat.Opt) ([]float64, error) {
	return []float64{1, 2, 3}, nil
}

func (s *stub) Models(ctx context.Context) ([]string, error) {
	return []string{"stub-model"}, nil
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestNew(t *testing.T) {
	assert := assert.New(t)

	t.Run("NilClient", func(t *testing.T) {
		_, err := service.New(nil)
		assert.True(errors.Is(err, chat.ErrBadParameter))
	})

	t.Run("Client", func(t *testing.T) {
		backend := new(stub)
		s, err := service.New(backend)
		assert.NoError(err)
		assert.Equal(backend, s.Client())
	})
}

func TestChat(t *testing.T) {
	assert := assert.New(t)
	backend := &stub{replies: []string{"hello"}}
	s, err := service.New(backend)
	assert.NoError(err)

	result, err := s.Chat(context.Background(), []chat.Message{chat.User("hi")})
	assert.NoError(err)
	assert.Equal("hello", result)
	if assert.Len(backend.exchanges, 1) {
		assert.Equal([]chat.Message{chat.User("hi")}, backend.exchanges[0])
	}
}

func TestChatWithContext(t *testing.T) {
	assert := assert.New(t)
	backend := &stub{replies: []string{"ok"}}
	s, err := service.New(backend)
	assert.NoError(err)

	background := []chat.Message{
		chat.System("You are a code reviewer"),
		chat.User("The project is written in Go"),
	}
	_, err = s.ChatWithContext(context.Background(), []chat.Message{chat.User("Review this diff")}, background)
	assert.NoError(err)
	if assert.Len(backend.exchanges, 1) {
		assert.Equal([]chat.Message{
			chat.System("You are a code reviewer"),
			chat.User("The project is written in Go"),
			chat.User("Review this diff"),
		}, backend.exchanges[0])
	}
}

func TestChatWithFallback(t *testing.T) {
	assert := assert.New(t)

	t.Run("MainSucceeds", func(t *testing.T) {
		backend := &stub{replies: []string{"main"}}
		s, err := service.New(backend)
		assert.NoError(err)

		result, err := s.ChatWithFallback(context.Background(),
			[]chat.Message{chat.User("main")},
			[]chat.Message{chat.User("fallback")},
		)
		assert.NoError(err)
		assert.Equal("main", result)
		assert.Len(backend.exchanges, 1)
	})

	t.Run("MainFails", func(t *testing.T) {
		backend := &stub{
			replies: []string{"", "recovered"},
			errs:    []error{chat.ErrBackend.With("over capacity"), nil},
		}
		s, err := service.New(backend)
		assert.NoError(err)

		result, err := s.ChatWithFallback(context.Background(),
			[]chat.Message{chat.User("main")},
			[]chat.Message{chat.User("fallback")},
		)
		assert.NoError(err)
		assert.Equal("recovered", result)
		if assert.Len(backend.exchanges, 2) {
			assert.Equal([]chat.Message{chat.User("fallback")}, backend.exchanges[1])
		}
	})

	t.Run("BothFail", func(t *testing.T) {
		backend := &stub{errs: []error{chat.ErrBackend.With("a"), chat.ErrBackend.With("b")}}
		s, err := service.New(backend)
		assert.NoError(err)

		_, err = s.ChatWithFallback(context.Background(),
			[]chat.Message{chat.User("main")},
			[]chat.Message{chat.User("fallback")},
		)
		assert.True(errors.Is(err, chat.ErrBackend))
	})
}

func TestEmbed(t *testing.T) {
	assert := assert.New(t)
	s, err := service.New(new(stub))
	assert.NoError(err)
	vector, err := s.Embed(context.Background(), "hello")
	assert.NoError(err)
	assert.Equal([]float64{1, 2, 3}, vector)
}

func TestChainPrompts(t *testing.T) {
	assert := assert.New(t)
	backend := &stub{replies: []string{"a summary", "a headline"}}
	s, err := service.New(backend)
	assert.NoError(err)

	result, err := s.ChainPrompts(context.Background(), []service.Prompt{
		{Name: "summary", Template: "Summarize: {{.content}}"},
		{Name: "headline", Template: "Write a headline for: {{.summary}}"},
	}, map[string]string{"content": "a long article"})
	assert.NoError(err)

	// Each step's output feeds the next template
	assert.Equal([]string{
		"Summarize: a long article",
		"Write a headline for: a summary",
	}, backend.prompts)
	assert.Equal(map[string]string{
		"summary":  "a summary",
		"headline": "a headline",
	}, result)
}

func TestChainPromptsErrors(t *testing.T) {
	assert := assert.New(t)

	t.Run("MissingVariable", func(t *testing.T) {
		backend := new(stub)
		s, err := service.New(backend)
		assert.NoError(err)

		_, err = s.ChainPrompts(context.Background(), []service.Prompt{
			{Name: "step", Template: "Use {{.missing}}"},
		}, nil)
		assert.True(errors.Is(err, chat.ErrBadParameter))
		assert.Empty(backend.prompts)
	})

	t.Run("UnnamedPrompt", func(t *testing.T) {
		s, err := service.New(new(stub))
		assert.NoError(err)
		_, err = s.ChainPrompts(context.Background(), []service.Prompt{
			{Template: "hello"},
		}, nil)
		assert.True(errors.Is(err, chat.ErrBadParameter))
	})

	t.Run("BackendFailure", func(t *testing.T) {
		backend := &stub{errs: []error{chat.ErrBackend.With("down")}}
		s, err := service.New(backend)
		assert.NoError(err)
		_, err = s.ChainPrompts(context.Background(), []service.Prompt{
			{Name: "step", Template: "hello"},
		}, nil)
		assert.True(errors.Is(err, chat.ErrBackend))
	})
}
