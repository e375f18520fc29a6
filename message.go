package chat

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	SystemRole    = "system"
	UserRole      = "user"
	AssistantRole = "assistant"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Message is a single role-tagged text message in an exchange
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// System returns a system role message
func System(content string) Message {
	return Message{Role: SystemRole, Content: content}
}

// User returns a user role message
func User(content string) Message {
	return Message{Role: UserRole, Content: content}
}

// Assistant returns an assistant role message
func Assistant(content string) Message {
	return Message{Role: AssistantRole, Content: content}
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
