package salary

import (
	"go-payroll/internal/employee"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalaryRecord struct {
	ID         uuid.UUID          `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID          `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:uq_salary_record_employee"`
	Employee   *employee.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`

	// MonthlySalary caches the base salary the components were derived from.
	// A record is stale when it no longer equals the employee's salary.
	MonthlySalary decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	BasicSalary         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	HRA                 decimal.Decimal `gorm:"column:hra;type:numeric(14,2);not null;default:0"`
	ConveyanceAllowance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	MedicalAllowance    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	SpecialAllowance    decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	OtherAllowance      decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	IncomeTax       decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	ProvidentFund   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	ProfessionalTax decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	ESI             decimal.Decimal `gorm:"column:esi;type:numeric(14,2);not null;default:0"`
	LoanDeduction   decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	OtherDeduction  decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`

	// EffectiveDate is the last increment: the join date for a new record,
	// then the time the base salary last changed.
	EffectiveDate time.Time `gorm:"type:date;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r SalaryRecord) Components() Components {
	return Components{
		Allowances: Allowances{
			BasicSalary:         r.BasicSalary,
			HRA:                 r.HRA,
			ConveyanceAllowance: r.ConveyanceAllowance,
			MedicalAllowance:    r.MedicalAllowance,
			SpecialAllowance:    r.SpecialAllowance,
			OtherAllowance:      r.OtherAllowance,
		},
		Deductions: Deductions{
			IncomeTax:       r.IncomeTax,
			ProvidentFund:   r.ProvidentFund,
			ProfessionalTax: r.ProfessionalTax,
			ESI:             r.ESI,
			LoanDeduction:   r.LoanDeduction,
			OtherDeduction:  r.OtherDeduction,
		},
	}
}

// applyDerived copies the base-derived components onto the record, rounded to
// the cents the numeric(14,2) columns hold. The editable fields (other
// allowance, loan, other deduction) are left alone.
func (r *SalaryRecord) applyDerived(c Components) {
	c = c.Round()
	r.BasicSalary = c.Allowances.BasicSalary
	r.HRA = c.Allowances.HRA
	r.ConveyanceAllowance = c.Allowances.ConveyanceAllowance
	r.MedicalAllowance = c.Allowances.MedicalAllowance
	r.SpecialAllowance = c.Allowances.SpecialAllowance
	r.IncomeTax = c.Deductions.IncomeTax
	r.ProvidentFund = c.Deductions.ProvidentFund
	r.ProfessionalTax = c.Deductions.ProfessionalTax
	r.ESI = c.Deductions.ESI
}

// IsStale reports whether the cached salary no longer matches base.
func (r SalaryRecord) IsStale(base decimal.Decimal) bool {
	return !r.MonthlySalary.Equal(base)
}

// derivedColumns are overwritten by a resync; editable columns are not.
var derivedColumns = []string{
	"monthly_salary",
	"basic_salary",
	"hra",
	"conveyance_allowance",
	"medical_allowance",
	"special_allowance",
	"income_tax",
	"provident_fund",
	"professional_tax",
	"esi",
	"effective_date",
	"updated_at",
}
