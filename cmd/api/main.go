package main

import (
	"os"

	"github.com/interntrack/server/internal/pkg/logger"
	"github.com/interntrack/server/internal/server"
)

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Server initialization failed")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
