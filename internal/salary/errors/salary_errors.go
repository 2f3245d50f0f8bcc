package salaryerrors

import (
	"go-payroll/internal/shared/apperror"
	"net/http"
)

var (
	ErrNegativeSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Base salary cannot be negative",
		http.StatusBadRequest,
	)
	ErrNegativeAdjustment = apperror.New(
		apperror.CodeInvalidInput,
		"Salary adjustments cannot be negative",
		http.StatusBadRequest,
	)
	ErrSalaryRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary record not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrPartialSync = apperror.New(
		apperror.CodePartialFailure,
		"Some salary records could not be synchronized",
		http.StatusMultiStatus,
	)
	ErrSyncAborted = apperror.New(
		apperror.CodeServiceUnavailable,
		"Salary synchronization stopped before it completed",
		http.StatusServiceUnavailable,
	)
)
