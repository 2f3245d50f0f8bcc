package events

import "time"

const (
	EmployeeSalaryChangedTopic = "hr.employee.salary.v1"
	EmployeeSalaryChangedType  = "employee_salary_changed"
)

// EmployeeSalaryChangedEvent is emitted whenever an employee's base salary is
// set, changed or cleared. Consumers resynchronise that employee's salary
// record. MonthlySalary is empty when the salary was cleared.
type EmployeeSalaryChangedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	EmployeeID    string    `json:"employee_id"`
	CompanyID     string    `json:"company_id"`
	MonthlySalary string    `json:"monthly_salary,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
