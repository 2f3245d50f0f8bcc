package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPaid    = "Paid"
	StatusPending = "Pending"
)

// SummaryRow is one employee with a base salary and a salary record, joined
// with the payslip issued for the requested period when there is one.
type SummaryRow struct {
	EmployeeID uuid.UUID
	FirstName  string
	LastName   string
	JobTitle   string
	Department string

	BasicSalary         decimal.Decimal
	HRA                 decimal.Decimal
	ConveyanceAllowance decimal.Decimal
	MedicalAllowance    decimal.Decimal
	SpecialAllowance    decimal.Decimal
	OtherAllowance      decimal.Decimal

	EffectiveDate time.Time
	PayslipID     *uuid.UUID
}

func (r SummaryRow) Status() string {
	if r.PayslipID != nil {
		return StatusPaid
	}
	return StatusPending
}
