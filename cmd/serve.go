package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/leandro-lugaresi/hub"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	gormrepo "github.com/cloudkitchen/cloudkitchen/repository/gorm"
	"github.com/cloudkitchen/cloudkitchen/router"
	"github.com/cloudkitchen/cloudkitchen/service/presence"
	"github.com/cloudkitchen/cloudkitchen/service/relay"
	"github.com/cloudkitchen/cloudkitchen/service/visitor"
	"github.com/cloudkitchen/cloudkitchen/service/ws"
	"github.com/cloudkitchen/cloudkitchen/utils/gormzap"
)

// serveCommand サーバー起動コマンド
func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve cloudkitchen API",
		Run: func(cmd *cobra.Command, args []string) {
			// Logger
			logger := getLogger()
			defer logger.Sync()

			logger.Info(fmt.Sprintf("cloudkitchen %s (revision %s)", Version, Revision))

			// Message Hub
			hub := hub.New()

			// Database
			logger.Info("connecting database...")
			engine, err := c.getDatabase(gormzap.New(logger.Named("gorm")))
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			db, err := engine.DB()
			if err != nil {
				logger.Fatal("failed to get *sql.DB", zap.Error(err))
			}
			defer db.Close()
			logger.Info("database connection was established")

			// Repository
			logger.Info("setting up repository...")
			repo, err := gormrepo.NewGormRepository(engine, hub, logger)
			if err != nil {
				logger.Fatal("failed to initialize repository", zap.Error(err))
			}
			if init, err := repo.Sync(); err != nil {
				logger.Fatal("failed to sync repository", zap.Error(err))
			} else if init {
				logger.Info("database was initialized")
			}
			logger.Info("repository was set up")

			// Presence / Visitors
			visitors := visitor.NewCounter(repo, logger)
			tracker := presence.NewTracker(hub, repo, visitors, logger)
			tracker.Start()

			// WebSocket
			streamer := ws.NewStreamer(hub, tracker, visitors, c.WS.AdminToken, logger)
			relay.NewRelay(hub, streamer, logger)

			// Router
			e := echo.New()
			router.Setup(e, &router.Handlers{
				Repo:     repo,
				WS:       streamer,
				Hub:      hub,
				Presence: tracker,
				Logger:   logger,
				Version:  Version,
				Revision: Revision,
			}, router.Config{
				DevMode:       c.DevMode,
				AccessLogging: c.AccessLog.Enabled,
			})

			go func() {
				if err := e.Start(fmt.Sprintf(":%d", c.Port)); err != nil {
					logger.Info("shutting down the server")
				}
			}()

			logger.Info("cloudkitchen started", zap.String("origin", c.Origin), zap.Int("port", c.Port))
			waitSIGINT()
			logger.Info("cloudkitchen shutting down...")

			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(c.ShutdownTimeout)*time.Second)
			defer cancel()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				err := e.Shutdown(ctx)
				logger.Info("Router shutdown")
				return err
			})
			eg.Go(func() error {
				err := streamer.Close()
				logger.Info("WebSocket shutdown")
				return err
			})
			eg.Go(func() error {
				tracker.Stop()
				logger.Info("Presence tracker shutdown")
				return nil
			})
			if err := eg.Wait(); err != nil {
				logger.Warn("abnormal shutdown", zap.Error(err))
			}
			logger.Info("cloudkitchen shutdown")
		},
	}
}
