package migration

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"patrol/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	return m.Called().Error(0)
}

func (m *MockMigrator) Down() error {
	return m.Called().Error(0)
}

func (m *MockMigrator) Steps(n int) error {
	return m.Called(n).Error(0)
}

func (m *MockMigrator) Version() (uint, bool, error) {
	args := m.Called()

	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()

	return args.Error(0), args.Error(1)
}

func newTestMigration(t *testing.T, migrator *MockMigrator) *Migration {
	t.Helper()

	cfg := &config.Config{Migration: &config.MigrationConfig{DatabaseURL: "postgres://localhost/patrol"}}
	engine := func(databaseURL string) (Migrator, error) {
		assert.Equal(t, "postgres://localhost/patrol", databaseURL)

		return migrator, nil
	}

	mg, err := NewMigration(cfg, engine, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return mg
}

func TestNewMigration_MissingURL(t *testing.T) {
	_, err := NewMigration(&config.Config{}, nil, nil)
	assert.ErrorIs(t, err, ErrDatabaseURLMissing)

	_, err = NewMigration(&config.Config{Migration: &config.MigrationConfig{}}, nil, nil)
	assert.ErrorIs(t, err, ErrDatabaseURLMissing)
}

func TestMigration_Up(t *testing.T) {
	t.Run("applies migrations", func(t *testing.T) {
		migrator := new(MockMigrator)
		migrator.On("Up").Return(nil)
		migrator.On("Close").Return(nil, nil)

		err := newTestMigration(t, migrator).Up()

		assert.NoError(t, err)
		migrator.AssertExpectations(t)
	})

	t.Run("no change is not an error", func(t *testing.T) {
		migrator := new(MockMigrator)
		migrator.On("Up").Return(migrate.ErrNoChange)
		migrator.On("Close").Return(nil, nil)

		assert.NoError(t, newTestMigration(t, migrator).Up())
	})

	t.Run("up failure is wrapped", func(t *testing.T) {
		migrator := new(MockMigrator)
		migrator.On("Up").Return(errors.New("syntax error"))
		migrator.On("Close").Return(nil, nil)

		err := newTestMigration(t, migrator).Up()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "migration up failed")
	})

	t.Run("close failure is reported", func(t *testing.T) {
		migrator := new(MockMigrator)
		migrator.On("Up").Return(nil)
		migrator.On("Close").Return(nil, errors.New("conn closed"))

		err := newTestMigration(t, migrator).Up()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "migration database")
	})

	t.Run("engine failure", func(t *testing.T) {
		cfg := &config.Config{Migration: &config.MigrationConfig{DatabaseURL: "postgres://x"}}
		engine := func(string) (Migrator, error) {
			return nil, errors.New("engine crash")
		}
		mg, err := NewMigration(cfg, engine, slog.New(slog.NewTextHandler(io.Discard, nil)))
		require.NoError(t, err)

		assert.EqualError(t, mg.Up(), "engine crash")
	})
}

func TestMigration_Down(t *testing.T) {
	migrator := new(MockMigrator)
	migrator.On("Steps", -2).Return(nil)
	migrator.On("Close").Return(nil, nil)

	mg := newTestMigration(t, migrator)

	assert.NoError(t, mg.Down(2))
	assert.Error(t, mg.Down(0))
	migrator.AssertExpectations(t)
}

func TestMigration_Version(t *testing.T) {
	t.Run("reports version", func(t *testing.T) {
		migrator := new(MockMigrator)
		migrator.On("Version").Return(uint(5), false, nil)
		migrator.On("Close").Return(nil, nil)

		version, dirty, err := newTestMigration(t, migrator).Version()

		require.NoError(t, err)
		assert.Equal(t, uint(5), version)
		assert.False(t, dirty)
	})

	t.Run("fresh database reports zero", func(t *testing.T) {
		migrator := new(MockMigrator)
		migrator.On("Version").Return(uint(0), false, migrate.ErrNilVersion)
		migrator.On("Close").Return(nil, nil)

		version, _, err := newTestMigration(t, migrator).Version()

		require.NoError(t, err)
		assert.Zero(t, version)
	})
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := migrationFiles.ReadDir(migrationDir)
	require.NoError(t, err)

	ups, downs := 0, 0
	for _, entry := range entries {
		switch {
		case strings.HasSuffix(entry.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(entry.Name(), ".down.sql"):
			downs++
		}
	}

	assert.Equal(t, 5, ups)
	assert.Equal(t, ups, downs)
}
