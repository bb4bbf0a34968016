package main

import (
	"os"

	"github.com/adityavkr/hostelhub/internal/pkg/logger"
	"github.com/adityavkr/hostelhub/internal/server"
)

// @title HostelHub API
// @version 1.0
// @description REST backend for hostel administration: students, rooms, beds, room change workflows and the weekly food menu.

// @contact.name API Support
// @contact.email support@hostelhub.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// NewServer orchestrates config loading, logging, database setup,
	// dependency wiring and router construction.
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal is received.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
