package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"study-mentor/internal/middleware"
	"study-mentor/internal/models"
	"study-mentor/internal/services"
)

type mentorService interface {
	Reply(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error)
	Status() models.MentorStatus
}

type MentorHandler struct {
	mentor       mentorService
	logger       *zap.Logger
	maxBodyBytes int64
}

func NewMentorHandler(mentor mentorService, logger *zap.Logger, maxBodyBytes int64) *MentorHandler {
	return &MentorHandler{
		mentor:       mentor,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

// Chat answers POST /api/mentor.
func (h *MentorHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	// The whole body must be one JSON value; trailing bytes are malformed.
	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("failed to read mentor request",
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(r.Context())))
		writeJSON(w, http.StatusInternalServerError, FailureBody)
		return
	}

	var req models.ChatRequest
	if err := json.Unmarshal(data, &req); err != nil {
		h.logger.Warn("failed to decode mentor request",
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(r.Context())))
		writeJSON(w, http.StatusInternalServerError, FailureBody)
		return
	}

	resp, err := h.mentor.Reply(r.Context(), &req)
	if err != nil {
		h.handleMentorError(w, r, err)
		return
	}

	h.logger.Debug("mentor reply",
		zap.Int("history", len(req.Messages)),
		zap.Bool("has_context", len(req.Context) > 0),
		zap.String("request_id", middleware.GetRequestID(r.Context())))

	writeJSON(w, http.StatusOK, resp)
}

// Status answers GET /api/mentor/status.
func (h *MentorHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.mentor.Status())
}

func (h *MentorHandler) handleMentorError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := ClassifyError(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("failed to produce mentor reply",
			zap.Error(err),
			zap.String("request_id", middleware.GetRequestID(r.Context())))
	}
	writeJSON(w, status, body)
}

// ClassifyError maps a mentor error onto its HTTP status and body.
func ClassifyError(err error) (int, models.ErrorBody) {
	var invalid *services.InvalidRequestError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest, models.ErrorBody{Error: invalid.Message}
	}
	return http.StatusInternalServerError, FailureBody
}
