package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"path-of-sharing/internal/common/config"
	"path-of-sharing/internal/common/logger"
	"path-of-sharing/internal/platform/postgres"
)

const usage = "usage: migrate [up|down|status] [steps]"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init("path-of-sharing-migrate", cfg.Debug)

	if err := run(cfg, os.Args[1:]); err != nil {
		logger.Fatal().Err(err).Msg("Migration failed")
	}
}

func run(cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return errors.New(usage)
	}

	client, err := postgres.NewClient(cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	switch args[0] {
	case "up":
		return postgres.MigrateUp(client.GetDB())
	case "down":
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil || steps < 1 {
				return fmt.Errorf("invalid steps %q", args[1])
			}
		}
		if err := postgres.MigrateDown(client.GetDB(), steps); err != nil {
			return err
		}
		logger.Info().Int("steps", steps).Msg("Migrations rolled back")
		return nil
	case "status":
		version, dirty, err := postgres.MigrationVersion(client.GetDB())
		if err != nil {
			return err
		}
		logger.Info().Uint("version", version).Bool("dirty", dirty).Msg("Migration status")
		return nil
	default:
		return fmt.Errorf("unknown migration command %q, %s", args[0], usage)
	}
}
