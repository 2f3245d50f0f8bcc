package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid status filter, expected Paid or Pending",
		http.StatusBadRequest,
	)
	ErrRefreshAborted = apperror.New(
		apperror.CodeServiceUnavailable,
		"salary refresh was cancelled before it completed",
		http.StatusServiceUnavailable,
	)
)
