package migrate

import (
	"github.com/spf13/cobra"

	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
)

var configFile string

func init() {
	pf := StartCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c",
		"config/config.yaml", "this parameter is used to start the service application")
}

var StartCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Migrate database",
	Example:      "{execfile} migrate -c config/config.yaml",
	SilenceUsage: true,
	PreRun: func(cmd *cobra.Command, args []string) {
		lib.SetConfigPath(configFile)
	},
	Run: func(cmd *cobra.Command, args []string) {
		config := lib.NewConfig()
		logger := lib.NewLogger(config)
		db := lib.NewDatabase(config, logger)

		if err := db.ORM.AutoMigrate(cms.Models()...); err != nil {
			logger.Zap.Fatalf("Error to migrate database: %v", err)
		}

		logger.Zap.Info("Database migration completed successfully")
	},
}
