package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationClassifiers(t *testing.T) {
	wrapped := func(code string) error {
		return fmt.Errorf("insert failed: %w", &pgconn.PgError{Code: code, Message: "violation"})
	}

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(wrapped(pgCodeUniqueViolation)))
	assert.False(t, isUniqueConstraintViolation(wrapped(pgCodeForeignKeyViolation)))

	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(wrapped(pgCodeForeignKeyViolation)))

	assert.True(t, isCheckConstraintViolation(wrapped(pgCodeCheckViolation)))
	assert.True(t, isNotNullConstraintViolation(wrapped(pgCodeNotNullViolation)))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "user_id" violates not-null constraint`)))

	assert.False(t, isCheckConstraintViolation(errors.New("connection reset")))
	assert.Empty(t, pgErrorCode(errors.New("connection reset")))
}
