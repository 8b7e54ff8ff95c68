package services

import (
	"context"
	"fmt"
	"strings"

	"study-mentor/internal/models"
)

const MentorModel = "solar-pro-2"

const (
	mockPreamble    = "모의 응답입니다. Upstage API 키가 설정되면 실제 응답이 반환됩니다.\n\n"
	mockEchoFormat  = "사용자 입력: \"%s\"\n\n"
	mockClosing     = "지금은 PRD 기능 구현을 위한 UI/흐름 검증 단계입니다."
	safeModeMessage = "임시 안전 모드 응답입니다. 실제 Upstage 연동은 활성화 전 사전 검증 후 전환됩니다."
)

// MentorService produces assistant replies for the study mentor.
//
// With an empty API key it answers with a deterministic mock that echoes the
// latest user message. Any other key, whitespace included, selects a fixed
// safe-mode placeholder; the key is not used for any upstream call yet.
type MentorService struct {
	apiKey string
}

func NewMentorService(apiKey string) *MentorService {
	return &MentorService{apiKey: apiKey}
}

// Reply answers the conversation in req.
func (s *MentorService) Reply(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, &InvalidRequestError{Message: "messages array is required"}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("reply aborted: %w", err)
	}

	content := safeModeMessage
	if s.apiKey == "" {
		content = mockReply(req.Messages)
	}

	return &models.ChatResponse{
		Model: MentorModel,
		Usage: models.Usage{},
		Message: models.ChatMessage{
			Role:    models.RoleAssistant,
			Content: content,
		},
	}, nil
}

// Status reports which reply branch is active.
func (s *MentorService) Status() models.MentorStatus {
	mode := models.ModeSafe
	if s.apiKey == "" {
		mode = models.ModeMock
	}
	return models.MentorStatus{Model: MentorModel, Mode: mode}
}

func mockReply(history []models.ChatMessage) string {
	var b strings.Builder
	b.WriteString(mockPreamble)
	if last, ok := LastMatching(history, isUserMessage); ok && last.Content != "" {
		fmt.Fprintf(&b, mockEchoFormat, last.Content)
	}
	b.WriteString(mockClosing)
	return b.String()
}

func isUserMessage(m models.ChatMessage) bool {
	return m.Role == models.RoleUser
}

// LastMatching scans seq from the end and returns the first element for which
// pred holds.
func LastMatching[T any](seq []T, pred func(T) bool) (T, bool) {
	for i := len(seq) - 1; i >= 0; i-- {
		if pred(seq[i]) {
			return seq[i], true
		}
	}
	var zero T
	return zero, false
}
