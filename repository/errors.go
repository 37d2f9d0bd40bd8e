package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate entry")

// ErrNotFound is returned when an update or lookup matched no record.
var ErrNotFound = errors.New("not found")

const mysqlDuplicateEntry = 1062

// TranslateError maps driver errors to repository errors, other errors are
// returned unchanged.
func TranslateError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return ErrDuplicate
	}
	return err
}
