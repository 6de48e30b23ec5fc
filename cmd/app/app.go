package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pasarku/pasarku-api/internal/api"
	"github.com/pasarku/pasarku-api/internal/config"
	"github.com/pasarku/pasarku-api/internal/db"
	"github.com/pasarku/pasarku-api/internal/logger"
)

// Start wires config, logging and storage, then serves the API until
// the listener fails.
func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("config.Load -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("logger.Init -> %w", err)
	}

	postgresDB, err := openDatabase(conf)
	if err != nil {
		return fmt.Errorf("openDatabase -> %w", err)
	}

	srv := api.NewServer(conf, postgresDB)

	addr := ":" + conf.API.Port
	zap.L().Info("starting server", zap.String("addr", addr))
	if err = srv.Router.Run(addr); err != nil {
		return fmt.Errorf("srv.Router.Run -> %w", err)
	}

	return nil
}

// openDatabase prefers DATABASE_URL, which hosted environments inject,
// over the config file's individual postgres fields.
func openDatabase(conf *config.AppConfig) (*gorm.DB, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return db.OpenPostgresWithURL(url)
	}

	return db.OpenPostgres(conf.Postgres)
}
