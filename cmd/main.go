// Package main provides the ledger and balance engine API for the
// savings group backend.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/muhindakevin/backend-sub002/cmd/httpserver"
	"github.com/muhindakevin/backend-sub002/internal/middleware"
	"github.com/muhindakevin/backend-sub002/pkg/configpkg"
	"github.com/muhindakevin/backend-sub002/pkg/dbpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	if config.ReconcileInterval > 0 {
		go server.ReconcileJob.Process()
	}

	logger.Info().Msg("LEDGER ENGINE SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
