package salary

import "github.com/shopspring/decimal"

type UpdateAdjustmentsRequest struct {
	OtherAllowance *decimal.Decimal `json:"other_allowance" binding:"required"`
	LoanDeduction  *decimal.Decimal `json:"loan_deduction" binding:"required"`
	OtherDeduction *decimal.Decimal `json:"other_deduction" binding:"required"`
}

type SalaryRecordResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	EmployeeNumber  string          `json:"employee_number,omitempty"`
	MonthlySalary   decimal.Decimal `json:"monthly_salary"`
	Allowances      Allowances      `json:"allowances"`
	Deductions      Deductions      `json:"deductions"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	EffectiveDate   string          `json:"effective_date"`
}

type SyncFailure struct {
	EmployeeID string `json:"employee_id"`
	Operation  string `json:"operation"`
	Reason     string `json:"reason"`
}

// SyncResult summarises one synchronization pass. Failures never abort the
// pass; callers surface them through Err.
type SyncResult struct {
	Inserted  int           `json:"inserted"`
	Updated   int           `json:"updated"`
	Unchanged int           `json:"unchanged"`
	Removed   int           `json:"removed"`
	Failed    int           `json:"failed"`
	Failures  []SyncFailure `json:"failures,omitempty"`
}

func (r SyncResult) Writes() int {
	return r.Inserted + r.Updated + r.Removed
}
