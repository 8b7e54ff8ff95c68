// Package tui is the terminal front end of the mentor chat.
package tui

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"study-mentor/internal/chatclient"
	"study-mentor/internal/models"
)

const (
	footerLabel = "Enter 전송 | Esc/Ctrl+C 종료"
	emptyLabel  = "질문을 입력해 시작해 보세요."
	sendingText = "전송 중"
)

type mentorClient interface {
	Chat(ctx context.Context, messages []models.ChatMessage) (string, error)
	Status(ctx context.Context) (models.MentorStatus, error)
}

type replyMsg struct {
	content string
	err     error
}

type statusMsg struct {
	status models.MentorStatus
	err    error
}

// Model is the Bubble Tea model. Conversation state lives in the session;
// the model only owns the input line and layout.
type Model struct {
	ctx     context.Context
	client  mentorClient
	session *chatclient.Session
	logger  *zap.Logger

	input textinput.Model
	width int
	mode  models.MentorMode
}

func New(ctx context.Context, client mentorClient, logger *zap.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "무엇을 도와드릴까요?"
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		ctx:     ctx,
		client:  client,
		session: chatclient.NewSession(client),
		logger:  logger,
		input:   ti,
	}
}

// Session exposes the conversation, mainly for tests and shutdown logging.
func (m Model) Session() *chatclient.Session {
	return m.session
}

func (m Model) Init() tea.Cmd {
	return m.fetchStatus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.send()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case replyMsg:
		if msg.err != nil {
			m.logger.Warn("mentor request failed", zap.Error(msg.err))
		}
		m.session.Complete(msg.content, msg.err)
		return m, nil

	case statusMsg:
		if msg.err != nil {
			m.logger.Debug("mentor status unavailable", zap.Error(msg.err))
			return m, nil
		}
		m.mode = msg.status.Mode
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send starts a turn and hands the network call to Bubble Tea. Blank input
// and sends while a reply is pending are ignored.
func (m Model) send() (tea.Model, tea.Cmd) {
	snapshot, err := m.session.Begin(m.input.Value())
	if err != nil {
		return m, nil
	}
	m.input.Reset()

	ctx, client := m.ctx, m.client
	return m, func() tea.Msg {
		reply, err := client.Chat(ctx, snapshot)
		return replyMsg{content: reply, err: err}
	}
}

func (m Model) fetchStatus() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		status, err := client.Status(ctx)
		return statusMsg{status: status, err: err}
	}
}

func (m Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m Model) render() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("AI 스터디 멘토"))
	b.WriteString("  ")
	b.WriteString(tagStyle.Render(modeLabel(m.mode)))
	b.WriteString("\n\n")

	history := m.session.History()
	if len(history) == 0 {
		b.WriteString(mutedStyle.Render(emptyLabel))
		b.WriteString("\n")
	}
	for _, msg := range history {
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	if m.session.Loading() {
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render(sendingText + "…"))
	}
	b.WriteString("\n")

	if errText := m.session.Err(); errText != "" {
		b.WriteString(errorStyle.Render(errText))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(footerLabel))
	return b.String()
}

func (m Model) renderMessage(msg models.ChatMessage) string {
	if msg.Role == models.RoleUser {
		style := userStyle
		if m.width > 0 {
			style = style.Width(m.width).Align(lipgloss.Right)
		}
		return style.Render(msg.Content)
	}

	style := assistantStyle
	if m.width > 0 {
		style = style.Width(m.width * 85 / 100)
	}
	return style.Render(msg.Content)
}

func modeLabel(mode models.MentorMode) string {
	switch mode {
	case models.ModeSafe:
		return "모드: Safe (API 키 설정됨)"
	case models.ModeMock:
		return "모드: Mock (API 키 미설정 시)"
	default:
		return "모드: 확인 중"
	}
}
