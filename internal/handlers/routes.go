package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, registrationHandler *RegistrationHandler, shopHandler *ShopHandler, adminHandler *AdminHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Utsav Registration API", "1.0.0")
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Registration routes
	huma.Post(api, "/api/registration", registrationHandler.HandleSubmit)
	huma.Get(api, "/api/registrations/{email}", registrationHandler.HandleListByEmail)
	huma.Put(api, "/api/update-registration", registrationHandler.HandleUpdate)
	huma.Delete(api, "/api/delete-registration", registrationHandler.HandleDelete)

	// Shop routes
	huma.Post(api, "/api/shop-order", shopHandler.HandlePlaceOrder)
	huma.Delete(api, "/api/shop-order", shopHandler.HandleDeleteOrder)
	huma.Get(api, "/api/shop-orders/{email}", shopHandler.HandleListOrders)

	// Admin routes. Aggregate analytics endpoints are served by the
	// reporting service, not here.
	huma.Get(api, "/api/check-admin/{email}", adminHandler.HandleCheckAdmin)
	huma.Get(api, "/api/admin/all-registrations", adminHandler.HandleAllRegistrations)
}
