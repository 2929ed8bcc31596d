package employeeerrors

import (
	"net/http"
	"strings"

	"go-employee-api/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	// The conflict answers with 400, which is what API consumers already
	// depend on.
	ErrEmployeeEmailExists = apperror.New(
		apperror.CodeConflict,
		"Employee with this email already exists",
		http.StatusBadRequest,
	)
	ErrNoFieldsToUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"No fields to update",
		http.StatusBadRequest,
	)
	ErrDepartmentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Department is required",
		http.StatusBadRequest,
	)
)

// Validation joins the individual violations into the single
// comma-separated message the API reports.
func Validation(messages []string) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidInput,
		strings.Join(messages, ", "),
		http.StatusBadRequest,
	)
}
