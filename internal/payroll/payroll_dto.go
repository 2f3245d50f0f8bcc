package payroll

import (
	"time"

	"go-payroll/internal/salary"

	"github.com/shopspring/decimal"
)

type GetSalariesFilterRequest struct {
	Status   string `form:"status" binding:"omitempty,oneof=Paid Pending"`
	Search   string `form:"q"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type SalarySummary struct {
	EmployeeID    string          `json:"employee_id"`
	Name          string          `json:"name"`
	Initials      string          `json:"initials"`
	Position      string          `json:"position"`
	Department    string          `json:"department"`
	TotalSalary   decimal.Decimal `json:"total_salary"`
	LastIncrement time.Time       `json:"last_increment"`
	Status        string          `json:"status"`
}

// Overview is the aggregate salary view after a refresh. Sync carries the
// synchronization outcome so callers can surface partial failures.
type Overview struct {
	Year      int               `json:"year"`
	Month     int               `json:"month"`
	Employees []SalarySummary   `json:"employees"`
	Sync      salary.SyncResult `json:"sync"`
}
