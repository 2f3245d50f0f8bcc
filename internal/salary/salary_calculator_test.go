package salary_test

import (
	"testing"

	"go-payroll/internal/salary"
	salaryerrors "go-payroll/internal/salary/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func assertDec(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: want %s, got %s", field, want, got.String())
}

func TestCalculate_FiftyThousand(t *testing.T) {
	c, err := salary.Calculate(dec("50000"))

	assert.NoError(t, err)
	assertDec(t, "22500", c.Allowances.BasicSalary, "basic")
	assertDec(t, "20000", c.Allowances.HRA, "hra")
	assertDec(t, "1600", c.Allowances.ConveyanceAllowance, "conveyance")
	assertDec(t, "1250", c.Allowances.MedicalAllowance, "medical")
	assertDec(t, "5000", c.Allowances.SpecialAllowance, "special")
	assertDec(t, "0", c.Allowances.OtherAllowance, "other allowance")
	assertDec(t, "2500", c.Deductions.IncomeTax, "income tax")
	assertDec(t, "6000", c.Deductions.ProvidentFund, "pf")
	assertDec(t, "200", c.Deductions.ProfessionalTax, "professional tax")
	assertDec(t, "375", c.Deductions.ESI, "esi")
	assertDec(t, "0", c.Deductions.LoanDeduction, "loan")
	assertDec(t, "0", c.Deductions.OtherDeduction, "other deduction")

	assertDec(t, "50350", c.GrossPay(), "gross")
	assertDec(t, "9075", c.TotalDeductions(), "deductions")
	assertDec(t, "41275", c.NetPay(), "net")
}

func TestCalculate_Rates(t *testing.T) {
	bases := []string{"0", "1", "999.99", "12345.67", "250000", "0.01"}

	for _, b := range bases {
		t.Run(b, func(t *testing.T) {
			base := dec(b)
			c, err := salary.Calculate(base)
			assert.NoError(t, err)

			pct := func(rate string) string {
				return base.Mul(dec(rate)).String()
			}
			assertDec(t, pct("0.45"), c.Allowances.BasicSalary, "basic")
			assertDec(t, pct("0.40"), c.Allowances.HRA, "hra")
			assertDec(t, pct("0.10"), c.Allowances.SpecialAllowance, "special")
			assertDec(t, pct("0.12"), c.Deductions.ProvidentFund, "pf")
			assertDec(t, pct("0.05"), c.Deductions.IncomeTax, "income tax")
			assertDec(t, pct("0.0075"), c.Deductions.ESI, "esi")
			assertDec(t, "1600", c.Allowances.ConveyanceAllowance, "conveyance")
			assertDec(t, "1250", c.Allowances.MedicalAllowance, "medical")
			assertDec(t, "200", c.Deductions.ProfessionalTax, "professional tax")

			again, _ := salary.Calculate(base)
			assert.Equal(t, c, again)
		})
	}
}

func TestCalculate_FractionalBaseIsExact(t *testing.T) {
	c, err := salary.Calculate(dec("12345.67"))

	assert.NoError(t, err)
	assertDec(t, "5555.5515", c.Allowances.BasicSalary, "basic")
	assertDec(t, "4938.268", c.Allowances.HRA, "hra")
	assertDec(t, "1234.567", c.Allowances.SpecialAllowance, "special")
	assertDec(t, "1481.4804", c.Deductions.ProvidentFund, "pf")
	assertDec(t, "617.2835", c.Deductions.IncomeTax, "income tax")
	assertDec(t, "92.592525", c.Deductions.ESI, "esi")

	rounded := c.Round()
	assertDec(t, "5555.55", rounded.Allowances.BasicSalary, "rounded basic")
	assertDec(t, "92.59", rounded.Deductions.ESI, "rounded esi")
	assertDec(t, "1600", rounded.Allowances.ConveyanceAllowance, "rounded conveyance")
}

func TestCalculate_NegativeBase(t *testing.T) {
	_, err := salary.Calculate(dec("-0.01"))

	assert.ErrorIs(t, err, salaryerrors.ErrNegativeSalary)
}

func TestComponents_NetPayCanGoNegative(t *testing.T) {
	c := salary.Components{
		Allowances: salary.Allowances{BasicSalary: dec("100")},
		Deductions: salary.Deductions{LoanDeduction: dec("150")},
	}

	assertDec(t, "-50", c.NetPay(), "net")
}
