package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"go-payroll/internal/events"
	"go-payroll/internal/payslip"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type PayslipIssuer interface {
	Issue(ctx context.Context, companyID, actorID string, req payslip.IssuePayslipRequest) (payslip.PayslipResponse, error)
}

// ConsumePayslipRequested issues the payslips queued by a bulk issue request.
func ConsumePayslipRequested(
	ctx context.Context,
	reader MessageReader,
	issuer PayslipIssuer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_requested")

	run(ctx, reader, log, func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayslipIssueRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return skip(err)
		}

		if event.RequestID != "" {
			ctx = contextutil.WithRequestID(ctx, event.RequestID)
		}

		year, month := event.Year, event.Month
		resp, err := issuer.Issue(ctx, event.CompanyID, event.RequestedBy, payslip.IssuePayslipRequest{
			EmployeeID: event.EmployeeID,
			Year:       &year,
			Month:      &month,
		})
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code == apperror.CodeInvalidInput {
				return skip(err)
			}
			return err
		}

		log.Info("payslip issued from request",
			zap.String("payslip_id", resp.ID),
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
			zap.String("period", resp.DisplayID),
		)
		return nil
	})
}
