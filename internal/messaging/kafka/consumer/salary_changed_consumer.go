package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-payroll/internal/events"
	"go-payroll/internal/salary"
	salaryerrors "go-payroll/internal/salary/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type SalarySyncer interface {
	SyncEmployee(ctx context.Context, companyID, employeeID string) (salary.SyncResult, error)
}

// ConsumeSalaryChanged resynchronises the salary record of every employee
// named in an employee_salary_changed event.
func ConsumeSalaryChanged(
	ctx context.Context,
	reader MessageReader,
	syncer SalarySyncer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_changed")

	run(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.EmployeeSalaryChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return skip(err)
		}

		result, err := syncer.SyncEmployee(ctx, event.CompanyID, event.EmployeeID)
		if err != nil {
			if errors.Is(err, salaryerrors.ErrEmployeeNotFound) {
				return skip(err)
			}
			return err
		}
		if err := result.Err(); err != nil {
			return err
		}

		log.Info("salary record synchronised",
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
			zap.Int("inserted", result.Inserted),
			zap.Int("updated", result.Updated),
			zap.Int("removed", result.Removed),
		)
		return nil
	})
}
