// Package migration applies the embedded SQL schema migrations with golang-migrate.
package migration

import (
	"embed"
	"log/slog"

	"patrol/config"

	"github.com/golang-migrate/migrate/v4"
	// Registers the postgres:// database driver.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

const migrationDir = "sql"

// ErrDatabaseURLMissing is returned when no migration database URL is configured.
var ErrDatabaseURLMissing = errors.New("migration database url is not configured")

// Migrator is the subset of *migrate.Migrate used here.
type Migrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Version() (version uint, dirty bool, err error)
	Close() (source error, database error)
}

// MigrationEngine opens a Migrator for the given database URL.
type MigrationEngine func(databaseURL string) (Migrator, error)

// DefaultEngine reads migrations from the embedded filesystem.
func DefaultEngine(databaseURL string) (Migrator, error) {
	src, err := iofs.New(migrationFiles, migrationDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrator")
	}

	return m, nil
}

type Migration struct {
	databaseURL string
	engine      MigrationEngine
	logger      *slog.Logger
}

// NewMigration builds a Migration from config; a nil engine means DefaultEngine.
func NewMigration(cfg *config.Config, engine MigrationEngine, logger *slog.Logger) (*Migration, error) {
	if cfg == nil || cfg.Migration == nil || cfg.Migration.DatabaseURL == "" {
		return nil, ErrDatabaseURLMissing
	}
	if engine == nil {
		engine = DefaultEngine
	}

	return &Migration{
		databaseURL: cfg.Migration.DatabaseURL,
		engine:      engine,
		logger:      logger,
	}, nil
}

// Up applies all pending migrations. No pending migrations is not an error.
func (mg *Migration) Up() error {
	return mg.run("up", func(m Migrator) error {
		return m.Up()
	})
}

// Down rolls back the given number of migrations.
func (mg *Migration) Down(steps int) error {
	if steps <= 0 {
		return errors.Errorf("down steps must be positive, got %d", steps)
	}

	return mg.run("down", func(m Migrator) error {
		return m.Steps(-steps)
	})
}

// Version reports the current schema version. A database without migrations reports 0.
func (mg *Migration) Version() (version uint, dirty bool, err error) {
	err = mg.run("version", func(m Migrator) error {
		var verr error
		version, dirty, verr = m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			return nil
		}

		return verr
	})

	return version, dirty, err
}

func (mg *Migration) run(op string, fn func(Migrator) error) (err error) {
	m, err := mg.engine(mg.databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			err = joinCloseError(err, srcErr, "migration source")
		}
		if dbErr != nil {
			err = joinCloseError(err, dbErr, "migration database")
		}
	}()

	if err := fn(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.logger.Info("No migration to apply", slog.String("op", op))

			return nil
		}

		return errors.Wrapf(err, "migration %s failed", op)
	}

	mg.logger.Info("Migration finished", slog.String("op", op))

	return nil
}

func joinCloseError(err, closeErr error, what string) error {
	if err == nil {
		return errors.Wrapf(closeErr, "failed to close %s", what)
	}

	return errors.Wrapf(err, "%s close error: %v", what, closeErr)
}
