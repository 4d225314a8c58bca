package main

import (
	"os"

	"github.com/yigit/devacademy/internal/pkg/logger"
	"github.com/yigit/devacademy/internal/server"
)

// @title DevAcademy API
// @version 1.0
// @description Student accounts, programming language catalog, courses and enrollments.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey SessionSuffix
// @in header
// @name end_token
// @description Suffix of the auth_token_<suffix> cookie holding the session token

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Details are logged by the setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
