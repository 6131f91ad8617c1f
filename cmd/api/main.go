package main

import (
	"flag"

	"github.com/internhub/internhub/internal/bootstrap"
	"github.com/internhub/internhub/internal/pkg/logger"
	"github.com/internhub/internhub/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	app, err := bootstrap.InitializeApplication(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
	}

	if err := server.New(app).Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server exited with error")
	}
}
