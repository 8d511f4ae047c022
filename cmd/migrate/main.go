// Command migrate applies or rolls back the MySQL schema.
//
//	migrate up
//	migrate down [steps]
package main

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"bankloan-backend/internal/config"
	"bankloan-backend/internal/infrastructure/db"
	"bankloan-backend/internal/infrastructure/logger"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.DBDriver != config.DriverMySQL {
		log.Fatal("migrations target MySQL only; sqlite is auto-migrated by the api", zap.String("driver", cfg.DBDriver))
	}

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	switch cmd {
	case "up":
		err = db.MigrateUp(cfg.MySQLDSN(), log)
	case "down":
		steps := 1
		if len(os.Args) > 2 {
			if steps, err = strconv.Atoi(os.Args[2]); err != nil || steps < 1 {
				fmt.Fprintln(os.Stderr, "usage: migrate down [steps>=1]")
				os.Exit(2)
			}
		}
		err = db.MigrateDown(cfg.MySQLDSN(), steps, log)
	default:
		fmt.Fprintln(os.Stderr, "usage: migrate up | down [steps]")
		os.Exit(2)
	}
	if err != nil {
		log.Fatal("migrate", zap.Error(err))
	}
}
