package main

import (
	"flag"

	"shelter-dashboard/pkg/config"
	"shelter-dashboard/pkg/database"
	"shelter-dashboard/pkg/logger"
	"shelter-dashboard/pkg/models"
)

func main() {
	command := flag.String("command", "up", "migration command (up, down)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.NewWithLevel(cfg.LogLevel)
	defer log.Sync()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	switch *command {
	case "up":
		if err := db.AutoMigrate(models.All()...); err != nil {
			log.Error("Failed to run migrations: %v", err)
			panic(err)
		}
		log.Info("Migrations applied successfully")
	case "down":
		if err := db.Migrator().DropTable(models.AllReversed()...); err != nil {
			log.Error("Failed to drop tables: %v", err)
			panic(err)
		}
		log.Info("Tables dropped")
	default:
		log.Error("Unknown command: %s", *command)
	}
}
