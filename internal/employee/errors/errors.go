package employeeerrors

import (
	"net/http"

	"github.com/PADMANABAN5/hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrDuplicateEmployee = apperror.New(
		apperror.CodeConflict,
		"Employee with this email or employee ID already exists",
		http.StatusConflict,
	)

	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date_of_joining format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
