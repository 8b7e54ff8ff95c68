package chatclient

import (
	"context"
	"errors"
	"strings"
	"sync"

	"study-mentor/internal/models"
)

// FailureText is the only error a user ever sees.
const FailureText = "네트워크 또는 서버 오류입니다."

var (
	ErrBlankInput = errors.New("input is blank")
	ErrInFlight   = errors.New("a message is already being sent")
)

type chatter interface {
	Chat(ctx context.Context, messages []models.ChatMessage) (string, error)
}

// Session holds one UI's conversation: the append-only history, the loading
// flag and the user-facing error. Only one send may be in flight at a time.
type Session struct {
	client chatter

	mu      sync.Mutex
	history []models.ChatMessage
	loading bool
	errMsg  string
}

func NewSession(client chatter) *Session {
	return &Session{client: client}
}

// Begin starts a turn: it appends input as a user message, marks the session
// loading and clears the error. The returned snapshot is what must be sent.
func (s *Session) Begin(input string) ([]models.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(input) == "" {
		return nil, ErrBlankInput
	}
	if s.loading {
		return nil, ErrInFlight
	}

	s.history = append(s.history, models.ChatMessage{Role: models.RoleUser, Content: input})
	s.loading = true
	s.errMsg = ""

	return cloneMessages(s.history), nil
}

// Complete ends the turn started by Begin. On success the reply is appended
// as an assistant message; on failure only the error text is set.
func (s *Session) Complete(reply string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.errMsg = FailureText
	} else {
		s.history = append(s.history, models.ChatMessage{Role: models.RoleAssistant, Content: reply})
	}
	s.loading = false
}

// Send runs one full turn with exactly one request to the endpoint.
func (s *Session) Send(ctx context.Context, input string) error {
	snapshot, err := s.Begin(input)
	if err != nil {
		return err
	}

	reply, err := s.client.Chat(ctx, snapshot)
	s.Complete(reply, err)
	return err
}

func (s *Session) History() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneMessages(s.history)
}

func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the user-facing error text, or "" when the last turn succeeded.
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

func cloneMessages(in []models.ChatMessage) []models.ChatMessage {
	out := make([]models.ChatMessage, len(in))
	copy(out, in)
	return out
}
