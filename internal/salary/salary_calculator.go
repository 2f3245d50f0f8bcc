package salary

import (
	salaryerrors "go-payroll/internal/salary/errors"

	"github.com/shopspring/decimal"
)

var (
	basicRate         = decimal.RequireFromString("0.45")
	hraRate           = decimal.RequireFromString("0.40")
	specialRate       = decimal.RequireFromString("0.10")
	providentFundRate = decimal.RequireFromString("0.12")
	incomeTaxRate     = decimal.RequireFromString("0.05")
	esiRate           = decimal.RequireFromString("0.0075")

	conveyanceAllowance = decimal.NewFromInt(1600)
	medicalAllowance    = decimal.NewFromInt(1250)
	professionalTax     = decimal.NewFromInt(200)
)

// Allowances are the earnings side of a salary breakdown.
type Allowances struct {
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	HRA                 decimal.Decimal `json:"hra"`
	ConveyanceAllowance decimal.Decimal `json:"conveyance_allowance"`
	MedicalAllowance    decimal.Decimal `json:"medical_allowance"`
	SpecialAllowance    decimal.Decimal `json:"special_allowance"`
	OtherAllowance      decimal.Decimal `json:"other_allowance"`
}

func (a Allowances) Total() decimal.Decimal {
	return decimal.Sum(
		a.BasicSalary,
		a.HRA,
		a.ConveyanceAllowance,
		a.MedicalAllowance,
		a.SpecialAllowance,
		a.OtherAllowance,
	)
}

// Deductions are the withholding side of a salary breakdown.
type Deductions struct {
	IncomeTax       decimal.Decimal `json:"income_tax"`
	ProvidentFund   decimal.Decimal `json:"provident_fund"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	ESI             decimal.Decimal `json:"esi"`
	LoanDeduction   decimal.Decimal `json:"loan_deduction"`
	OtherDeduction  decimal.Decimal `json:"other_deduction"`
}

func (d Deductions) Total() decimal.Decimal {
	return decimal.Sum(
		d.IncomeTax,
		d.ProvidentFund,
		d.ProfessionalTax,
		d.ESI,
		d.LoanDeduction,
		d.OtherDeduction,
	)
}

type Components struct {
	Allowances Allowances `json:"allowances"`
	Deductions Deductions `json:"deductions"`
}

func (c Components) GrossPay() decimal.Decimal {
	return c.Allowances.Total()
}

func (c Components) TotalDeductions() decimal.Decimal {
	return c.Deductions.Total()
}

// NetPay may be negative when deductions exceed allowances.
func (c Components) NetPay() decimal.Decimal {
	return c.GrossPay().Sub(c.TotalDeductions())
}

// Calculate derives the standard breakdown for a monthly base salary. The
// percentages are exact products of base; callers round when they store or
// display them. Other allowance, loan and other deduction always start at zero.
func Calculate(base decimal.Decimal) (Components, error) {
	if base.IsNegative() {
		return Components{}, salaryerrors.ErrNegativeSalary
	}

	pct := func(rate decimal.Decimal) decimal.Decimal {
		return base.Mul(rate)
	}

	return Components{
		Allowances: Allowances{
			BasicSalary:         pct(basicRate),
			HRA:                 pct(hraRate),
			ConveyanceAllowance: conveyanceAllowance,
			MedicalAllowance:    medicalAllowance,
			SpecialAllowance:    pct(specialRate),
			OtherAllowance:      decimal.Zero,
		},
		Deductions: Deductions{
			IncomeTax:       pct(incomeTaxRate),
			ProvidentFund:   pct(providentFundRate),
			ProfessionalTax: professionalTax,
			ESI:             pct(esiRate),
			LoanDeduction:   decimal.Zero,
			OtherDeduction:  decimal.Zero,
		},
	}, nil
}

// Round returns the breakdown with every amount rounded to cents.
func (c Components) Round() Components {
	a, d := c.Allowances, c.Deductions
	return Components{
		Allowances: Allowances{
			BasicSalary:         a.BasicSalary.Round(2),
			HRA:                 a.HRA.Round(2),
			ConveyanceAllowance: a.ConveyanceAllowance.Round(2),
			MedicalAllowance:    a.MedicalAllowance.Round(2),
			SpecialAllowance:    a.SpecialAllowance.Round(2),
			OtherAllowance:      a.OtherAllowance.Round(2),
		},
		Deductions: Deductions{
			IncomeTax:       d.IncomeTax.Round(2),
			ProvidentFund:   d.ProvidentFund.Round(2),
			ProfessionalTax: d.ProfessionalTax.Round(2),
			ESI:             d.ESI.Round(2),
			LoanDeduction:   d.LoanDeduction.Round(2),
			OtherDeduction:  d.OtherDeduction.Round(2),
		},
	}
}
