package events

import "time"

const (
	PayslipIssueRequestedTopic = "hr.payroll.payslip.requested.v1"
	PayslipIssueRequestedType  = "payslip_issue_requested"

	PayslipIssuedTopic = "hr.payroll.payslip.issued.v1"
	PayslipIssuedType  = "payslip_issued"
)

type PayslipIssueRequestedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	CompanyID   string    `json:"company_id"`
	EmployeeID  string    `json:"employee_id"`
	Year        int       `json:"year"`
	Month       int       `json:"month"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type PayslipIssuedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	PayslipID  string    `json:"payslip_id"`
	CompanyID  string    `json:"company_id"`
	EmployeeID string    `json:"employee_id"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	Amount     string    `json:"amount"`
	IssuedBy   string    `json:"issued_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
