package app

import (
	"context"
	"fmt"
	"time"

	"go-payroll/internal/employee"
	"go-payroll/internal/payslip"
	"go-payroll/internal/salary"

	"gorm.io/gorm"
)

// companyCounter and outboxEventRow only describe tables that the counter and
// outbox repositories access through raw SQL.
type companyCounter struct {
	CompanyID   string    `gorm:"type:uuid;primaryKey"`
	CounterType string    `gorm:"type:varchar(50);primaryKey"`
	LastValue   int64     `gorm:"not null;default:0"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (companyCounter) TableName() string { return "company_counters" }

type outboxEventRow struct {
	ID            string     `gorm:"type:uuid;primaryKey"`
	RequestID     *string    `gorm:"type:varchar(64)"`
	AggregateType string     `gorm:"type:varchar(50);not null"`
	AggregateID   string     `gorm:"type:uuid;not null"`
	EventType     string     `gorm:"type:varchar(100);not null"`
	Topic         string     `gorm:"type:varchar(150);not null"`
	Payload       []byte     `gorm:"type:jsonb;not null"`
	Status        string     `gorm:"type:varchar(20);not null;index:idx_outbox_status_retry,priority:1"`
	RetryCount    int        `gorm:"not null;default:0"`
	NextRetryAt   *time.Time `gorm:"index:idx_outbox_status_retry,priority:2"`
	ErrorMessage  *string    `gorm:"type:varchar(500)"`
	ProcessedAt   *time.Time
	CreatedAt     time.Time `gorm:"not null;default:now()"`
	UpdatedAt     time.Time `gorm:"not null;default:now()"`
}

func (outboxEventRow) TableName() string { return "outbox_events" }

// Migrate creates or updates every table the services read and write.
func Migrate(ctx context.Context, db *gorm.DB) error {
	models := []any{
		&employee.Employee{},
		&salary.SalaryRecord{},
		&payslip.Payslip{},
		&companyCounter{},
		&outboxEventRow{},
	}
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
