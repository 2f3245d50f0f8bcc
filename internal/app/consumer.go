package app

import (
	"context"
	"fmt"
	"sync"

	"go-payroll/internal/bootstrap"
	"go-payroll/internal/employee"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/messaging/kafka/consumer"
	"go-payroll/internal/payslip"
	"go-payroll/internal/salary"
	"go-payroll/internal/shared/config"
	"go-payroll/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer keeps salary records in step with employee salary changes and
// issues payslips queued by bulk requests.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	employeeRepo := employee.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	salaryService := salary.NewService(salaryRepo, employeeRepo)
	payslipService := payslip.NewService(
		sqlDB,
		payslip.NewRepository(gormDB),
		salaryRepo,
		kafka.NewOutboxRepository(sqlDB),
	)

	salaryReader := connection.KafkaReader(cfg.KafkaBroker, cfg.KafkaConsumerGroup+"-salary", events.EmployeeSalaryChangedTopic)
	defer salaryReader.Close()

	payslipReader := connection.KafkaReader(cfg.KafkaBroker, cfg.KafkaConsumerGroup+"-payslip", events.PayslipIssueRequestedTopic)
	defer payslipReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		consumer.ConsumeSalaryChanged(ctx, salaryReader, salaryService, logger)
	}()
	go func() {
		defer wg.Done()
		consumer.ConsumePayslipRequested(ctx, payslipReader, payslipService, logger)
	}()

	sig := bootstrap.WaitForSignal()
	logger.Info("consumer shutting down", zap.String("signal", sig.String()))
	cancel()
	wg.Wait()

	return nil
}
