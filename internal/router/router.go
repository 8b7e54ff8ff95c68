package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"study-mentor/internal/handlers"
	"study-mentor/internal/middleware"
	"study-mentor/internal/web"
	"study-mentor/internal/websocket"
)

func New(
	logger *zap.Logger,
	mentorHandler *handlers.MentorHandler,
	mentorSocket *websocket.MentorSocket,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger))
	r.Use(middleware.Recover(logger, handlers.FailureBody))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{frontendURL},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Mentor Routes ────
	r.Route("/api/mentor", func(r chi.Router) {
		r.Post("/", mentorHandler.Chat)
		r.Get("/status", mentorHandler.Status)
		r.Get("/ws", mentorSocket.HandleWebSocket)
	})

	// ──── Browser UI ────
	r.Handle("/*", web.Handler())

	return r
}
