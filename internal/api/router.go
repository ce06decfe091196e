package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/strikbal/rating-backend/internal/api/handlers"
	"github.com/strikbal/rating-backend/internal/api/middleware"
	"github.com/strikbal/rating-backend/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "method not allowed"})
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	playerHandler := handlers.NewPlayerHandler(services.Player)
	gameHandler := handlers.NewGameHandler(services.Game)
	taskHandler := handlers.NewTaskHandler(services.Task)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/players", func(r chi.Router) {
				r.Get("/", playerHandler.List)
				r.Get("/me", playerHandler.Me)
			})

			r.Route("/games", func(r chi.Router) {
				r.Get("/", gameHandler.List)

				// Mutations require an administrator
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", gameHandler.Create)
					r.Put("/", gameHandler.Settle)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", taskHandler.Create)
					r.Put("/", taskHandler.Complete)
					r.Delete("/", taskHandler.Delete)
				})
			})
		})
	})

	return r
}
