// Package postgres implements the repositories on top of PostgreSQL.
package postgres

import (
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vadimbarashkov/utmka/internal/entity"
)

const foreignKeyViolationErrCode = "23503"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func isForeignKeyViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.SQLState() == foreignKeyViolationErrCode
}

// storageError marks err as a persistence failure while keeping it inspectable.
func storageError(op, msg string, err error) error {
	return fmt.Errorf("%s: %s: %w: %w", op, msg, entity.ErrStorage, err)
}
