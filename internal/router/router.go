package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"veriface-backend/internal/handlers"
	"veriface-backend/internal/middleware"
	"veriface-backend/internal/websocket"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	studentHandler *handlers.StudentHandler,
	sessionHandler *handlers.SessionHandler,
	attendanceHandler *handlers.AttendanceHandler,
	wsHub *websocket.Hub,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Auth rate limiter (10 req/min per IP)
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Instructor Auth Routes (public) ────
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)

			// Logout requires auth
			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// ──── Student Routes ────
		r.Route("/students", func(r chi.Router) {
			r.Post("/register", studentHandler.Enroll)           // Public
			r.Get("/class/{classId}", studentHandler.ListByClass) // Public

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Get("/unapproved", studentHandler.ListUnapproved)
				r.Put("/approve/{id}", studentHandler.Approve)
			})
		})

		// ──── Session Routes ────
		r.Route("/sessions", func(r chi.Router) {
			r.Get("/{token}", sessionHandler.Resolve) // Public: capture client lookup

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/create", sessionHandler.Create)
			})
		})

		// ──── Attendance Routes ────
		r.Route("/attendance", func(r chi.Router) {
			r.Post("/mark", attendanceHandler.Mark) // Public: capability is the session token

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Get("/{sessionId}", attendanceHandler.List)
			})
		})

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
