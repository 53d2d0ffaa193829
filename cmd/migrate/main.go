package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"patrol/config"
	logs "patrol/internal/infra/log"
	"patrol/internal/infra/persistence/migration"

	"github.com/pkg/errors"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: migrate <command>

Commands:
  up          apply all pending migrations
  down <n>    roll back n migrations
  version     print the current schema version
`)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	if err := run(flag.Args()); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	mg, err := migration.NewMigration(cfg, nil, logger)
	if err != nil {
		return err
	}

	switch args[0] {
	case "up":
		return mg.Up()
	case "down":
		if len(args) < 2 {
			return errors.New("down requires a step count")
		}
		steps, err := strconv.Atoi(args[1])
		if err != nil {
			return errors.Wrapf(err, "invalid step count %q", args[1])
		}

		return mg.Down(steps)
	case "version":
		version, dirty, err := mg.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)

		return nil
	default:
		usage()

		return errors.Errorf("unknown command %q", args[0])
	}
}
