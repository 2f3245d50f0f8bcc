package paysliperrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeRequired = apperror.RequiredField("Employee")
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	)
	ErrNoBaseSalary = apperror.New(
		apperror.CodeInvalidInput,
		"employee has no base salary",
		http.StatusBadRequest,
	)
	ErrSalaryRecordMissing = apperror.New(
		apperror.CodeInvalidInput,
		"employee has no salary record to issue a payslip from",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payslip period, month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrFuturePeriod = apperror.New(
		apperror.CodeInvalidInput,
		"payslip period cannot be in the future",
		http.StatusBadRequest,
	)
	ErrNegativeComponent = apperror.New(
		apperror.CodeInvalidInput,
		"salary component values cannot be negative",
		http.StatusBadRequest,
	)
	ErrNegativeNetPay = apperror.New(
		apperror.CodeInvalidInput,
		"deductions exceed allowances, net pay cannot be negative",
		http.StatusBadRequest,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
)
