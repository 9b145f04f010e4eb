package app

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fstr-tourism/pereval-api/internal/api"
	"github.com/fstr-tourism/pereval-api/internal/config"
	"github.com/fstr-tourism/pereval-api/internal/db"
	"github.com/fstr-tourism/pereval-api/internal/logger"
	"github.com/fstr-tourism/pereval-api/internal/notify"
	"github.com/fstr-tourism/pereval-api/internal/service"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment, conf.Log.Level); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	conf.Watch(func(e fsnotify.Event, next *config.AppConfig, err error) {
		if err != nil {
			zap.L().Warn("failed to reload config", zap.String("file", e.Name), zap.Error(err))
			return
		}
		if err = logger.SetLevel(next.Log.Level); err != nil {
			zap.L().Warn("invalid log level in config", zap.String("level", next.Log.Level), zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("file", e.Name), zap.String("log_level", next.Log.Level))
	})

	dbURL := os.Getenv("DATABASE_URL")
	migrationURL := dbURL
	if migrationURL == "" {
		migrationURL = conf.Postgres.URL()
	}

	if err = db.Migrate(migrationURL); err != nil {
		return fmt.Errorf("failed to migrate database -> %w", err)
	}

	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL, conf.Postgres)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}
	defer func() {
		if err := db.Close(postgresDB); err != nil {
			zap.L().Warn("failed to close database", zap.Error(err))
		}
	}()

	var publisher service.Publisher
	if conf.RabbitMQ.URL != "" {
		rabbit, err := notify.NewRabbitMQPublisher(conf.RabbitMQ)
		if err != nil {
			return fmt.Errorf("failed to initialize rabbitmq -> %w", err)
		}
		defer func() {
			if err := rabbit.Close(); err != nil {
				zap.L().Warn("failed to close rabbitmq", zap.Error(err))
			}
		}()
		publisher = rabbit
	} else {
		zap.L().Info("rabbitmq url is empty, pereval events are not published")
	}

	s := api.NewServer(conf, postgresDB, publisher)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
