package main

import (
	"flag"
	"fmt"
	"halo-optom-service/internal/app/config"
	"halo-optom-service/internal/app/drivers/database"
	"halo-optom-service/internal/app/drivers/logger"
	"os"
	"path/filepath"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up or down")
	steps := flag.Int("steps", 0, "maximum number of migrations to apply, 0 means all")
	dir := flag.String("dir", "internal/migration", "directory holding the migration files, relative to the working directory")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig.App.Env, driverConfig.Logger.Level)

	migrateDirection, err := parseDirection(*direction)
	if err != nil {
		log.WithError(err).Fatal("Invalid migration direction")
	}

	wd, err := os.Getwd()
	if err != nil {
		log.WithError(err).Fatal("Error getting working directory")
	}

	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	migrations := &migrate.FileMigrationSource{
		Dir: filepath.Join(wd, *dir),
	}

	n, err := migrate.ExecMax(db, "postgres", migrations, migrateDirection, *steps)
	if err != nil {
		log.WithError(err).Fatal("Error executing migration")
	}

	log.WithFields(logrus.Fields{
		"direction": *direction,
		"applied":   n,
	}).Info("Migrations applied")
}

func parseDirection(direction string) (migrate.MigrationDirection, error) {
	switch direction {
	case "up":
		return migrate.Up, nil
	case "down":
		return migrate.Down, nil
	default:
		return migrate.Up, fmt.Errorf("unknown migration direction %q", direction)
	}
}
