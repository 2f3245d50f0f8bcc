package employeeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound            = apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)
	ErrEmployeeAlreadyExists       = apperror.New(apperror.CodeConflict, "An employee with this email already exists", http.StatusConflict)
	ErrEmployeeNumberAlreadyExists = apperror.New(apperror.CodeConflict, "Employee number is already taken in this company", http.StatusConflict)
)

// Input errors.
var (
	ErrInvalidCompanyID = apperror.New(apperror.CodeInvalidInput, "Invalid company ID", http.StatusBadRequest)
	ErrInvalidJoinDate  = apperror.New(apperror.CodeInvalidInput, "Invalid join_date, expected YYYY-MM-DD", http.StatusBadRequest)
	ErrNegativeSalary   = apperror.New(apperror.CodeInvalidInput, "Monthly salary must not be negative", http.StatusBadRequest)
)
