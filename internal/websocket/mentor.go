package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"study-mentor/internal/handlers"
	"study-mentor/internal/middleware"
	"study-mentor/internal/models"
)

type replier interface {
	Reply(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error)
}

// MentorSocket serves the mentor exchange over a WebSocket: every text frame
// is a ChatRequest and gets exactly one reply frame, either a ChatResponse or
// an ErrorBody. Errors do not close the socket.
type MentorSocket struct {
	mentor       replier
	logger       *zap.Logger
	maxFrameSize int64
	upgrader     websocket.Upgrader
}

// NewMentorSocket accepts browser connections from allowedOrigin ("*" for
// any) and from the serving host itself.
func NewMentorSocket(mentor replier, logger *zap.Logger, maxFrameSize int64, allowedOrigin string) *MentorSocket {
	return &MentorSocket{
		mentor:       mentor,
		logger:       logger,
		maxFrameSize: maxFrameSize,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigin),
		},
	}
}

func originChecker(allowedOrigin string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || allowedOrigin == "*" || strings.EqualFold(origin, allowedOrigin) {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(u.Host, r.Host)
	}
}

func (s *MentorSocket) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	if s.maxFrameSize > 0 {
		conn.SetReadLimit(s.maxFrameSize)
	}

	requestID := middleware.GetRequestID(r.Context())
	s.logger.Debug("websocket connected", zap.String("request_id", requestID))

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("websocket read failed", zap.Error(err), zap.String("request_id", requestID))
			}
			return
		}

		if err := conn.WriteJSON(s.exchange(r.Context(), data)); err != nil {
			s.logger.Warn("websocket write failed", zap.Error(err), zap.String("request_id", requestID))
			return
		}
	}
}

func (s *MentorSocket) exchange(ctx context.Context, data []byte) (reply interface{}) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("panic while handling websocket frame", zap.Any("panic", rec))
			reply = handlers.FailureBody
		}
	}()

	var req models.ChatRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return handlers.FailureBody
	}

	resp, err := s.mentor.Reply(ctx, &req)
	if err != nil {
		_, body := handlers.ClassifyError(err)
		return body
	}
	return resp
}
