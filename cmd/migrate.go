package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cloudkitchen/cloudkitchen/migration"
	"github.com/cloudkitchen/cloudkitchen/utils/gormzap"
)

// migrateCommand DBマイグレーションコマンド
func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Execute database schema migration only",
		Run: func(cmd *cobra.Command, args []string) {
			logger := getLogger()
			defer logger.Sync()

			engine, err := c.getDatabase(gormzap.New(logger.Named("gorm")))
			if err != nil {
				logger.Fatal("failed to connect database", zap.Error(err))
			}
			db, err := engine.DB()
			if err != nil {
				logger.Fatal("failed to get *sql.DB", zap.Error(err))
			}
			defer db.Close()

			init, err := migration.Migrate(engine)
			if err != nil {
				logger.Fatal("failed to migrate", zap.Error(err))
			}
			logger.Info("migration finished", zap.Bool("initialized", init))
		},
	}
}
