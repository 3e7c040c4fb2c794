// Package service contains the HTTP surface of the exchange: the router,
// the handlers for auth, listings, swaps and moderation, and the mapping
// from business errors to HTTP statuses.
package service

import (
	"rewear/internal/app"
	"rewear/internal/pkg/auth"
	"rewear/internal/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// Service encapsulates the HTTP server configuration, including the application's business logic,
// HTTP handlers, the server's run address, the token manager and a logger.
type Service struct {
	handlers   *handlers
	app        *app.App
	tokens     *auth.TokenManager
	runAddress string
	log        *logger.Logger
}

// NewService creates and initializes a new Service instance.
func NewService(app *app.App, tokens *auth.TokenManager, runAddress string, l *logger.Logger) *Service {
	handlers := newHandlers(app, l)
	return &Service{handlers: handlers, app: app, tokens: tokens, runAddress: runAddress, log: l}
}

// NewRouter sets up and returns a new chi.Router instance with the necessary middleware and routes.
// It applies logging middleware globally, and JWT authentication middleware for protected routes.
func (service *Service) NewRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(service.log.WithLogging())

	router.Post("/api/auth/register", service.handlers.registerHandler)
	router.Post("/api/auth/login", service.handlers.loginHandler)
	router.Get("/api/items", service.handlers.browseItemsHandler)
	router.Get("/api/items/{id}", service.handlers.itemDetailHandler)

	router.Group(func(r chi.Router) {
		r.Use(service.tokens.CheckJWTMiddleware())
		r.Get("/api/auth/profile", service.handlers.profileHandler)
		r.Post("/api/items", service.handlers.createItemHandler)
		r.Get("/api/items/mine", service.handlers.myItemsHandler)
		r.Post("/api/items/{id}/swap-request", service.handlers.swapRequestHandler)
		r.Post("/api/items/{id}/swap-response", service.handlers.swapResponseHandler)
		r.Post("/api/items/{id}/redeem", service.handlers.redeemHandler)
		r.Get("/api/admin/items", service.handlers.pendingItemsHandler)
		r.Post("/api/admin/items/{id}/approve", service.handlers.approveItemHandler)
		r.Post("/api/admin/items/{id}/reject", service.handlers.rejectItemHandler)
		r.Delete("/api/admin/item/{id}", service.handlers.deleteItemHandler)
	})

	return router
}
