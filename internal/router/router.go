package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	contactHandler *handlers.ContactHandler,
	allowedOrigin string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigin))

	// Both endpoints are public; keep abusive clients off the upstream
	// quota and the SMTP account.
	chatLimiter := middleware.NewRateLimiter(20, time.Minute)
	contactLimiter := middleware.NewRateLimiter(5, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(chatLimiter.Middleware)
			r.Post("/chat", chatHandler.Ask)
		})

		r.Group(func(r chi.Router) {
			r.Use(contactLimiter.Middleware)
			r.Post("/contact", contactHandler.Submit)
		})
	})

	return r
}
