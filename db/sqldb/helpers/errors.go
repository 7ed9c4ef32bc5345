package helpers

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/posulliv/presto/models"
)

var (
	ErrDeadlock   = errors.New("deadlock detected")
	ErrBadRequest = errors.New("bad request")
)

// ConvertSQLError maps driver-specific error codes onto the helper's
// sentinel errors so callers never branch on driver types.
func (h *sqlHelper) ConvertSQLError(err error) error {
	if err == nil {
		return nil
	}

	switch e := err.(type) {
	case *mysql.MySQLError:
		return convertMySQLError(e)
	case *pgconn.PgError:
		return convertPostgresError(e)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return convertPostgresError(pgErr)
	}

	return err
}

func convertMySQLError(err *mysql.MySQLError) error {
	switch err.Number {
	case 1062:
		return models.ErrResourceExists
	case 1146:
		return models.ErrResourceNotFound
	case 1205, 1213:
		return ErrDeadlock
	case 1406:
		return ErrBadRequest
	}

	return err
}

func convertPostgresError(err *pgconn.PgError) error {
	switch err.Code {
	case "22001":
		return ErrBadRequest
	case "23505":
		return models.ErrResourceExists
	case "40P01", "55P03":
		return ErrDeadlock
	case "42P01":
		return models.ErrResourceNotFound
	}

	return err
}
