package payslip

import (
	"errors"

	paysliperrors "go-payroll/internal/payslip/errors"
	"go-payroll/internal/shared/apperror"

	"gorm.io/gorm"
)

func mapRepositoryError(err error, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return paysliperrors.ErrPayslipNotFound
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return apperror.Store(err, "payslip", id)
}
