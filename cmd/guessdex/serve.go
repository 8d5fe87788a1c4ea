package main

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ericogr/guessdex/internal/api"
	"github.com/ericogr/guessdex/internal/config"
	"github.com/ericogr/guessdex/internal/constants"
	"github.com/ericogr/guessdex/internal/logging"
	"github.com/ericogr/guessdex/internal/storage"
	"github.com/ericogr/guessdex/internal/store"
)

const sweepInterval = time.Minute

func newServeCmd(cli *cliConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP game server",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cli)
		},
	}
}

func runServe(cli *cliConfig) error {
	cfg, err := config.LoadConfig(cli.configPath)
	if err != nil {
		return fmt.Errorf("load catalog config: %w", err)
	}

	db, err := storage.OpenAndMigrate(cli.dbPath, cfg.Entities)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	repo := storage.NewSQLiteRepository(db, cfg.Entities)

	// rebuild is invoked by the reload endpoint with a freshly loaded
	// config: seed counter rows for any new creatures and hand back a
	// repository that merges the new attributes.
	rebuild := func(next *config.LoadedConfig) storage.Repository {
		storage.SeedCatalog(db, next.Entities)
		return storage.NewSQLiteRepository(db, next.Entities)
	}

	sessions := store.NewSessionStore()
	stop := make(chan struct{})
	defer close(stop)
	sessions.StartSweeper(sweepInterval, cfg.SessionIdleTimeout, stop, func(dropped int) {
		logging.Info("Idle sessions expired", logging.Fields{"dropped": dropped})
	})

	handler := api.NewGameHandler(sessions, repo, cfg.Entities, cli.configPath, rebuild)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteEntities, handler.ListEntities)
		apiRoutes.GET(constants.RouteTopEntities, handler.ListTopEntities)
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.POST(constants.RouteReload, handler.ReloadCatalog)

		apiRoutes.POST(constants.RouteSessions, handler.CreateSession)
		apiRoutes.GET(constants.RouteSessionByID, handler.GetSession)
		apiRoutes.DELETE(constants.RouteSessionByID, handler.DeleteSession)
		apiRoutes.POST(constants.RouteSessionAnswer, handler.SubmitAnswer)
		apiRoutes.POST(constants.RouteSessionResult, handler.ReportResult)
		apiRoutes.GET(constants.RouteSessionWS, handler.PlaySocket)
	}

	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: cfg.ServerAddress})
	if err := router.Run(cfg.ServerAddress); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}
