package payslip

import (
	"fmt"
	"time"

	"go-payroll/internal/employee"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payslip holds at most one row per employee and calendar month. Re-issuing
// for the same period overwrites the amounts and generation time.
type Payslip struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID          `gorm:"type:uuid;not null;index:idx_payslip_company_period,priority:1"`
	EmployeeID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_employee_period,priority:1"`
	Employee   *employee.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`

	Year  int `gorm:"not null;uniqueIndex:uq_payslip_employee_period,priority:2;index:idx_payslip_company_period,priority:2"`
	Month int `gorm:"not null;uniqueIndex:uq_payslip_employee_period,priority:3;index:idx_payslip_company_period,priority:3"`

	// Amount is the net pay for the period.
	Amount          decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	GrossPay        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	GeneratedAt time.Time  `gorm:"not null"`
	IssuedBy    *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Payslip) Period() Period {
	return Period{Year: p.Year, Month: time.Month(p.Month)}
}

// DisplayID renders the human reference, e.g. PS-2024-03.
func (p Payslip) DisplayID() string {
	return p.Period().DisplayID()
}

type Period struct {
	Year  int
	Month time.Month
}

func CurrentPeriod(now time.Time) Period {
	return Period{Year: now.Year(), Month: now.Month()}
}

func (p Period) DisplayID() string {
	return fmt.Sprintf("PS-%d-%02d", p.Year, int(p.Month))
}

func (p Period) After(other Period) bool {
	if p.Year != other.Year {
		return p.Year > other.Year
	}
	return p.Month > other.Month
}
