package employee

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusActive     = "active"
	StatusProbation  = "probation"
	StatusOnLeave    = "on_leave"
	StatusResigned   = "resigned"
	StatusTerminated = "terminated"

	TypeFullTime = "full_time"
	TypePartTime = "part_time"
	TypeContract = "contract"
	TypeIntern   = "intern"
)

type Employee struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uq_employee_number,priority:1"`
	EmployeeNumber   string    `gorm:"type:varchar(30);not null;uniqueIndex:uq_employee_number,priority:2"`
	FirstName        string    `gorm:"type:varchar(100);not null"`
	LastName         string    `gorm:"type:varchar(100)"`
	Email            string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	JobTitle         string    `gorm:"type:varchar(120)"`
	Department       string    `gorm:"type:varchar(120)"`
	EmploymentStatus string    `gorm:"type:varchar(20);not null;default:'active'"`
	EmploymentType   string    `gorm:"type:varchar(20);not null;default:'full_time'"`

	// MonthlySalary is the authoritative base salary. Employees without one
	// have no salary record and are left out of payroll.
	MonthlySalary decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	JoinDate      time.Time           `gorm:"type:date;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Initials returns up to two upper case letters taken from the first and last name.
func (e Employee) Initials() string {
	var b strings.Builder
	for _, part := range []string{e.FirstName, e.LastName} {
		for _, r := range strings.TrimSpace(part) {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

func (e Employee) HasSalary() bool {
	return e.MonthlySalary.Valid
}
