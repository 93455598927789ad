package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/omondi/shulehub/internal/pkg/logger"
	"github.com/omondi/shulehub/internal/server"
)

// @title ShuleHub API
// @version 1.0
// @description School administration backend: student roster and lifecycle, email campaigns, learning resources, student council and newsletter subscribers.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Environment overrides from .env when present; real env wins.
	if err := godotenv.Load(); err == nil {
		logger.Info().Msg("Loaded environment from .env")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
