package payslip

import (
	"time"

	"go-payroll/internal/salary"

	"github.com/shopspring/decimal"
)

// IssuePayslipRequest issues for the current month unless Year and Month are
// both given. Allowances and Deductions override the stored salary record.
type IssuePayslipRequest struct {
	EmployeeID string             `json:"employee_id" binding:"required"`
	Year       *int               `json:"year" binding:"omitempty,min=2000"`
	Month      *int               `json:"month" binding:"omitempty,min=1,max=12"`
	Allowances *salary.Allowances `json:"allowances"`
	Deductions *salary.Deductions `json:"deductions"`
}

type BulkIssueRequest struct {
	Year  *int `json:"year" binding:"omitempty,min=2000"`
	Month *int `json:"month" binding:"omitempty,min=1,max=12"`
}

type PayslipResponse struct {
	ID              string          `json:"id"`
	DisplayID       string          `json:"display_id"`
	CompanyID       string          `json:"company_id"`
	EmployeeID      string          `json:"employee_id"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	Amount          decimal.Decimal `json:"amount"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	GeneratedAt     time.Time       `json:"generated_at"`
	IssuedBy        string          `json:"issued_by,omitempty"`
}

type PayslipHistoryItem struct {
	ID              string          `json:"id"`
	DisplayID       string          `json:"display_id"`
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	MonthName       string          `json:"month_name"`
	Amount          decimal.Decimal `json:"amount"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	GeneratedAt     time.Time       `json:"generated_at"`
}

type BulkIssueResponse struct {
	Year   int `json:"year"`
	Month  int `json:"month"`
	Queued int `json:"queued"`
}

type PayslipDocument struct {
	FileName string
	Content  []byte
}
