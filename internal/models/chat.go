package models

import (
	"bytes"
	"encoding/json"
)

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the mentor endpoint.
type ChatRequest struct {
	Messages []ChatMessage   `json:"messages"`
	Context  json.RawMessage `json:"context,omitempty"`
}

// UnmarshalJSON accepts any JSON value. A body that is not an object, or whose
// "messages" member is not an array, decodes with no messages. Context is kept
// verbatim whatever its type.
func (r *ChatRequest) UnmarshalJSON(data []byte) error {
	*r = ChatRequest{}
	if !isJSONKind(data, '{') {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if ctx, ok := fields["context"]; ok && !isJSONKind(ctx, 'n') {
		r.Context = ctx
	}

	raw, ok := fields["messages"]
	if !ok || !isJSONKind(raw, '[') {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}
	r.Messages = make([]ChatMessage, len(items))
	for i, item := range items {
		if err := r.Messages[i].UnmarshalJSON(item); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalJSON reads role and content without schema checks. Entries that are
// not objects carry no role. A non-string content is kept as its compact JSON
// text; null or missing content is empty.
func (m *ChatMessage) UnmarshalJSON(data []byte) error {
	*m = ChatMessage{}
	if !isJSONKind(data, '{') {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var role string
	if isJSONKind(fields["role"], '"') {
		if err := json.Unmarshal(fields["role"], &role); err != nil {
			return err
		}
	}
	m.Role = Role(role)

	content, err := contentText(fields["content"])
	if err != nil {
		return err
	}
	m.Content = content
	return nil
}

func contentText(raw json.RawMessage) (string, error) {
	switch {
	case len(bytes.TrimSpace(raw)) == 0, isJSONKind(raw, 'n'):
		return "", nil
	case isJSONKind(raw, '"'):
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
}

// isJSONKind reports whether the first significant byte of data is lead.
func isJSONKind(data []byte, lead byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == lead
}

// Usage carries token accounting. Always zero until a real model is wired.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// ChatResponse is the reply from the mentor endpoint.
type ChatResponse struct {
	Model   string      `json:"model"`
	Usage   Usage       `json:"usage"`
	Message ChatMessage `json:"message"`
}

// ErrorBody is the flat error payload of the mentor endpoint.
type ErrorBody struct {
	Error string `json:"error"`
}

type MentorMode string

const (
	ModeMock MentorMode = "mock"
	ModeSafe MentorMode = "safe"
)

// MentorStatus describes which reply branch the endpoint is serving.
type MentorStatus struct {
	Model string     `json:"model"`
	Mode  MentorMode `json:"mode"`
}
