package employee

import (
	"errors"
	"strings"

	employeeerrors "go-employee-api/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError re-maps a lost race on the email unique index to
// the same conflict error the pre-insert check raises. The check and
// the insert are two round trips, so two concurrent creates can both
// pass the check; the database constraint is the backstop.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employees_email" {
			return employeeerrors.ErrEmployeeEmailExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employees_email") {
		return employeeerrors.ErrEmployeeEmailExists
	}

	return err
}
