package llm

import (
	"context"
	"fmt"
)

// Message is one role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// System, User and Assistant are small constructors for readable call sites.
func System(content string) Message    { return Message{Role: RoleSystem, Content: content} }
func User(content string) Message      { return Message{Role: RoleUser, Content: content} }
func Assistant(content string) Message { return Message{Role: RoleAssistant, Content: content} }

// Gateway is the capability set the scoring service depends on.
// Implementations may call a remote LLM or return canned results (for tests).
type Gateway interface {
	// Complete sends the messages to the backing model and returns the trimmed
	// text content of the first response choice.
	Complete(ctx context.Context, messages []Message, temperature float64) (string, error)

	// Parse sends the messages with the model's output constrained to the JSON
	// schema derived from out, and unmarshals the response into out.
	Parse(ctx context.Context, messages []Message, schemaName string, out any, temperature float64) error
}

// Error is returned when the gateway cannot fulfill a request, so the caller
// can distinguish "the model answered badly" from "the model was unreachable."
type Error struct {
	Reason  string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("llm gateway: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("llm gateway: %s", e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}
