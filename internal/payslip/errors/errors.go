package paysliperrors

import (
	"net/http"

	"github.com/PADMANABAN5/hrms/internal/shared/apperror"
)

var (
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)

	ErrDraftNotFound = apperror.New(
		apperror.CodeNotFound,
		"No payslip draft in progress for this employee",
		http.StatusNotFound,
	)

	ErrPayslipAlreadyGenerated = apperror.New(
		apperror.CodeConflict,
		"Payslip already generated for this employee and period",
		http.StatusConflict,
	)

	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12 and year must be a four digit year",
		http.StatusBadRequest,
	)

	ErrRenderFailed = apperror.New(
		apperror.CodeRenderFailed,
		"Failed to render payslip document",
		http.StatusInternalServerError,
	)

	ErrMailFailed = apperror.New(
		apperror.CodeMailFailed,
		"Failed to send payslip email",
		http.StatusBadGateway,
	)
)
