package setup

import (
	"github.com/spf13/cobra"

	"github.com/top-system/light-news/api/cms/repository"
	"github.com/top-system/light-news/api/cms/service"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
	"github.com/top-system/light-news/pkg/file"
)

var configFile string
var seedFile string

func init() {
	pf := StartCmd.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c",
		"config/config.yaml", "this parameter is used to start the service application")
	pf.StringVarP(&seedFile, "seed", "s",
		"config/seed.yaml", "this parameter is used to set the initialized users, categories and pages.")
}

var StartCmd = &cobra.Command{
	Use:          "setup",
	Short:        "Set up data for the application",
	Example:      "{execfile} setup -c config/config.yaml -s config/seed.yaml",
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

		if !file.IsFile(seedFile) {
			logger.Zap.Fatal("seed file does not exist")
		}

		data, err := LoadSeed(seedFile)
		if err != nil {
			logger.Zap.Fatalf("seed file decode error: %v", err)
		}

		userRepo := repository.NewUserRepository(db, logger)
		categoryRepo := repository.NewCategoryRepository(db, logger)
		pageRepo := repository.NewPageRepository(db, logger)

		seeder := Seeder{
			logger:          logger,
			userRepository:  userRepo,
			userService:     service.NewUserService(logger, userRepo),
			categoryService: service.NewCategoryService(logger, userRepo, categoryRepo),
			pageService:     service.NewPageService(logger, userRepo, pageRepo),
		}

		if err := seeder.Run(data); err != nil {
			logger.Zap.Fatalf("seed data init err: %v", err)
		}

		logger.Zap.Info("Setup completed successfully")
	},
}
