package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"study-mentor/internal/handlers"
	"study-mentor/internal/models"
	"study-mentor/internal/services"
	"study-mentor/internal/websocket"
)

func newTestRouter(apiKey string) http.Handler {
	return newTestRouterForOrigin(apiKey, "*")
}

func newTestRouterForOrigin(apiKey, frontendURL string) http.Handler {
	logger := zap.NewNop()
	mentor := services.NewMentorService(apiKey)
	return New(
		logger,
		handlers.NewMentorHandler(mentor, logger, 1<<20),
		websocket.NewMentorSocket(mentor, logger, 1<<20, frontendURL),
		frontendURL,
	)
}

func preflight(h http.Handler, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, "/api/mentor", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Health(t *testing.T) {
	rr := serve(newTestRouter(""), http.MethodGet, "/health", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if rr.Body.String() != `{"status":"ok"}` {
		t.Fatalf("unexpected body %s", rr.Body.String())
	}
}

func TestRouter_MentorScenarios(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"korean greeting", `{"messages":[{"role":"user","content":"안녕"}]}`, http.StatusOK, `사용자 입력: \"안녕\"`},
		{"empty messages", `{"messages":[]}`, http.StatusBadRequest, `{"error":"messages array is required"}`},
		{"malformed body", `this is not json`, http.StatusInternalServerError, `{"error":"failed to handle request"}`},
	}

	h := newTestRouter("")
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(h, http.MethodPost, "/api/mentor", tc.body)

			if rr.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}
			if !strings.Contains(rr.Body.String(), tc.wantBody) {
				t.Fatalf("expected body to contain %s, got %s", tc.wantBody, rr.Body.String())
			}
			if rr.Header().Get("X-Request-ID") == "" {
				t.Fatalf("expected X-Request-ID header")
			}
		})
	}
}

func TestRouter_MentorRejectsGet(t *testing.T) {
	rr := serve(newTestRouter(""), http.MethodGet, "/api/mentor", "")

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
}

func TestRouter_Status(t *testing.T) {
	rr := serve(newTestRouter("up-key"), http.MethodGet, "/api/mentor/status", "")

	var status models.MentorStatus
	if err := json.NewDecoder(rr.Body).Decode(&status); err != nil {
		t.Fatalf("failed to decode status: %v", err)
	}
	if status.Mode != models.ModeSafe || status.Model != services.MentorModel {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestRouter_ServesUI(t *testing.T) {
	rr := serve(newTestRouter(""), http.MethodGet, "/", "")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "AI 스터디 멘토") {
		t.Fatalf("expected chat page")
	}
}

func TestRouter_Preflight(t *testing.T) {
	rr := preflight(newTestRouter(""), "http://example.com")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard allow-origin, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Methods"); got != http.MethodPost {
		t.Fatalf("expected POST to be allowed, got %q", got)
	}
}

func TestRouter_PreflightRestrictedOrigin(t *testing.T) {
	h := newTestRouterForOrigin("", "http://localhost:3000")

	rr := preflight(h, "http://localhost:3000")
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected configured origin to be allowed, got %q", got)
	}

	rr = preflight(h, "http://elsewhere.example")
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected other origins to be refused, got %q", got)
	}
}

func TestRouter_CORSExposesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/mentor", strings.NewReader(`{"messages":[{"role":"user","content":"hi"}]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://example.com")
	rr := httptest.NewRecorder()
	newTestRouter("").ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard allow-origin, got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Expose-Headers"); !strings.EqualFold(got, "X-Request-ID") {
		t.Fatalf("expected request id to be exposed, got %q", got)
	}
}
