package main

import (
	"os"

	"github.com/jkta/athletereg/internal/pkg/logger"
	"github.com/jkta/athletereg/internal/server"
)

// @title JKTA Athlete Registration API
// @version 1.0
// @description Registration and payment workflow for the athletic federation membership portal

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
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
