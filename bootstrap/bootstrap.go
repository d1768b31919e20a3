package bootstrap

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/fx"

	"github.com/top-system/light-news/api"
	"github.com/top-system/light-news/api/middlewares"
	"github.com/top-system/light-news/errors"
	"github.com/top-system/light-news/lib"
	"github.com/top-system/light-news/models/cms"
)

// Module exported for initializing application
var Module = fx.Options(
	lib.Module,
	api.Module,
	fx.Invoke(bootstrap),
)

func bootstrap(
	lifecycle fx.Lifecycle,
	handler lib.HttpHandler,
	routes api.Routes,
	logger lib.Logger,
	config lib.Config,
	middlewares middlewares.Middlewares,
	database lib.Database,
) {
	db, err := database.ORM.DB()
	if err != nil {
		logger.Zap.Fatalf("Error to get database connection: %v", err)
	}

	server := &http.Server{
		Addr:              config.Http.ListenAddr(),
		Handler:           handler.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if err := db.Ping(); err != nil {
				logger.Zap.Fatalf("Error to ping database connection: %v", err)
			}

			// SQLite 固定单连接
			if !lib.IsSQLite() {
				db.SetMaxOpenConns(config.Database.MaxOpenConns)
				db.SetMaxIdleConns(config.Database.MaxIdleConns)
				db.SetConnMaxLifetime(time.Duration(config.Database.MaxLifetime) * time.Second)
			}

			if config.Database.AutoMigrate {
				if err := database.ORM.AutoMigrate(cms.Models()...); err != nil {
					logger.Zap.Fatalf("Error to migrate database: %v", err)
				}
				logger.Zap.Info("Database migration completed")
			}

			middlewares.Setup()
			routes.Setup()

			go func() {
				logger.Zap.Infof("Server started on %s", config.Http.ListenAddr())
				if err := server.ListenAndServe(); err != nil {
					if errors.Is(err, http.ErrServerClosed) {
						logger.Zap.Debug("Shutting down the Application")
					} else {
						logger.Zap.Fatalf("Error to Start Application: %v", err)
					}
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Zap.Info("Stopping Application")

			if err := server.Shutdown(ctx); err != nil {
				logger.Zap.Errorf("Error to shutdown server: %v", err)
			}
			return db.Close()
		},
	})
}
