package main

import (
	"time"

	"github.com/sirupsen/logrus"
	"pokertrainer-server/internal/config"
	"pokertrainer-server/pkg/db"
)

func main() {
	cfg := config.Instance()
	if cfg.PGDSN == "" {
		logrus.Fatal("pgDsn is not configured")
	}

	dbh, err := db.WaitForDB(cfg.PGDSN, time.Second*10)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to database")
	}
	defer dbh.Close()

	if err := db.Migrate(dbh, cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}
}
