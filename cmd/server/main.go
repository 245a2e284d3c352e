package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rajaram-gurukul/utsav-registration/internal/auth"
	"github.com/rajaram-gurukul/utsav-registration/internal/config"
	"github.com/rajaram-gurukul/utsav-registration/internal/database"
	"github.com/rajaram-gurukul/utsav-registration/internal/handlers"
	"github.com/rajaram-gurukul/utsav-registration/internal/notifier"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	// Initialize Handlers
	var registrationNotifier notifier.Notifier
	if discordNotifier, err := notifier.NewDiscordNotifier(cfg); err != nil {
		log.Printf("Discord notifier not initialized: %v", err)
	} else {
		registrationNotifier = discordNotifier
	}

	authHandler := auth.NewHandler(cfg)
	registrationHandler := handlers.NewRegistrationHandler(db, registrationNotifier)
	shopHandler := handlers.NewShopHandler(db)
	adminHandler := handlers.NewAdminHandler(db, authHandler)

	// Initialize Router
	r := chi.NewRouter()
	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		}))
	}

	// Register Routes
	handlers.RegisterRoutes(r, registrationHandler, shopHandler, adminHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
