package payslip

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	paysliperrors "go-payroll/internal/payslip/errors"
	"go-payroll/internal/salary"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ComponentsReader loads the stored salary breakdown a payslip is issued from.
type ComponentsReader interface {
	FindByEmployee(ctx context.Context, companyID string, employeeID string) (*salary.SalaryRecord, error)
	FindAllByCompany(ctx context.Context, companyID string) ([]salary.SalaryRecord, error)
}

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	Issue(ctx context.Context, companyID, actorID string, req IssuePayslipRequest) (PayslipResponse, error)
	RequestBulkIssue(ctx context.Context, companyID, actorID string, req BulkIssueRequest) (BulkIssueResponse, error)
	History(ctx context.Context, companyID, employeeID string) ([]PayslipHistoryItem, error)
	Download(ctx context.Context, companyID, id string) (PayslipDocument, error)
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger.Named("payslip.service")
		}
	}
}

type service struct {
	db         *sql.DB
	repo       Repository
	components ComponentsReader
	outbox     kafka.OutboxRepository
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	components ComponentsReader,
	outboxRepo kafka.OutboxRepository,
	opts ...Option,
) Service {
	s := &service{
		db:         db,
		repo:       repo,
		components: components,
		outbox:     outboxRepo,
		now:        time.Now,
		logger:     zap.L().Named("payslip.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Issue(
	ctx context.Context,
	companyID, actorID string,
	req IssuePayslipRequest,
) (PayslipResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	logger := contextutil.GetLogger(ctx, s.logger)

	if req.EmployeeID == "" {
		return PayslipResponse{}, paysliperrors.ErrEmployeeRequired
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return PayslipResponse{}, paysliperrors.ErrInvalidEmployeeID
	}
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PayslipResponse{}, paysliperrors.ErrInvalidCompanyID
	}

	now := s.now()
	period, err := resolvePeriod(req.Year, req.Month, now)
	if err != nil {
		return PayslipResponse{}, err
	}

	belongs, err := s.repo.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return PayslipResponse{}, apperror.Store(err, "employee", req.EmployeeID)
	}
	if !belongs {
		return PayslipResponse{}, paysliperrors.ErrEmployeeNotInCompany
	}
	salaried, err := s.repo.EmployeeHasBaseSalary(ctx, companyID, req.EmployeeID)
	if err != nil {
		return PayslipResponse{}, apperror.Store(err, "employee", req.EmployeeID)
	}
	if !salaried {
		return PayslipResponse{}, paysliperrors.ErrNoBaseSalary
	}

	components, err := s.resolveComponents(ctx, companyID, req)
	if err != nil {
		return PayslipResponse{}, err
	}

	gross := components.GrossPay()
	deductions := components.TotalDeductions()
	net := components.NetPay()
	if net.IsNegative() {
		logger.Warn("payslip rejected, negative net pay",
			zap.String("employee_id", req.EmployeeID),
			zap.String("net_pay", net.String()),
		)
		return PayslipResponse{}, paysliperrors.ErrNegativeNetPay
	}

	p := &Payslip{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		EmployeeID:      employeeUUID,
		Year:            period.Year,
		Month:           int(period.Month),
		Amount:          net.Round(2),
		GrossPay:        gross.Round(2),
		TotalDeductions: deductions.Round(2),
		GeneratedAt:     now.UTC(),
		IssuedBy:        parseActor(actorID),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("issue payslip begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return PayslipResponse{}, apperror.Store(err, "payslip", req.EmployeeID)
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Upsert(ctx, p); err != nil {
		logger.Error("issue payslip upsert failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Int("year", p.Year),
			zap.Int("month", p.Month),
			zap.Error(err),
		)
		return PayslipResponse{}, apperror.Store(err, "payslip", req.EmployeeID)
	}

	if s.outbox != nil {
		event := events.PayslipIssuedEvent{
			EventType:  events.PayslipIssuedType,
			RequestID:  rid,
			PayslipID:  p.ID.String(),
			CompanyID:  companyID,
			EmployeeID: req.EmployeeID,
			Year:       p.Year,
			Month:      p.Month,
			Amount:     p.Amount.StringFixed(2),
			IssuedBy:   actorID,
			OccurredAt: now.UTC(),
		}
		outboxEvent, err := kafka.NewOutboxEvent(rid, "payslip", p.ID.String(), event.EventType, events.PayslipIssuedTopic, event)
		if err != nil {
			return PayslipResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			logger.Error("issue payslip outbox persist failed", zap.String("payslip_id", p.ID.String()), zap.Error(err))
			return PayslipResponse{}, apperror.Store(err, "outbox event", p.ID.String())
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("issue payslip commit failed", zap.String("request_id", rid), zap.Error(err))
		return PayslipResponse{}, apperror.Store(err, "payslip", req.EmployeeID)
	}

	logger.Info("payslip issued",
		zap.String("request_id", rid),
		zap.String("payslip_id", p.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("period", p.DisplayID()),
	)

	return mapToResponse(*p), nil
}

// resolveComponents uses in-session overrides when given and falls back to
// the stored salary record for whichever side is missing.
func (s *service) resolveComponents(ctx context.Context, companyID string, req IssuePayslipRequest) (salary.Components, error) {
	var c salary.Components

	if req.Allowances == nil || req.Deductions == nil {
		record, err := s.components.FindByEmployee(ctx, companyID, req.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c, paysliperrors.ErrSalaryRecordMissing
			}
			return c, apperror.Store(err, "salary record", req.EmployeeID)
		}
		c = record.Components()
	}

	if req.Allowances != nil {
		c.Allowances = *req.Allowances
	}
	if req.Deductions != nil {
		c.Deductions = *req.Deductions
	}

	if hasNegative(c) {
		return c, paysliperrors.ErrNegativeComponent
	}
	return c, nil
}

func hasNegative(c salary.Components) bool {
	a, d := c.Allowances, c.Deductions
	for _, v := range []decimal.Decimal{
		a.BasicSalary, a.HRA, a.ConveyanceAllowance, a.MedicalAllowance, a.SpecialAllowance, a.OtherAllowance,
		d.IncomeTax, d.ProvidentFund, d.ProfessionalTax, d.ESI, d.LoanDeduction, d.OtherDeduction,
	} {
		if v.IsNegative() {
			return true
		}
	}
	return false
}

func (s *service) RequestBulkIssue(
	ctx context.Context,
	companyID, actorID string,
	req BulkIssueRequest,
) (BulkIssueResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	logger := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(companyID); err != nil {
		return BulkIssueResponse{}, paysliperrors.ErrInvalidCompanyID
	}
	period, err := resolvePeriod(req.Year, req.Month, s.now())
	if err != nil {
		return BulkIssueResponse{}, err
	}

	records, err := s.components.FindAllByCompany(ctx, companyID)
	if err != nil {
		return BulkIssueResponse{}, apperror.Store(err, "salary record", companyID)
	}

	resp := BulkIssueResponse{Year: period.Year, Month: int(period.Month)}
	if len(records) == 0 || s.outbox == nil {
		return resp, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return BulkIssueResponse{}, apperror.Store(err, "outbox event", companyID)
	}
	defer tx.Rollback()

	outboxRepo := s.outbox.WithTx(tx)
	occurredAt := s.now().UTC()
	for _, r := range records {
		event := events.PayslipIssueRequestedEvent{
			EventType:   events.PayslipIssueRequestedType,
			RequestID:   rid,
			CompanyID:   companyID,
			EmployeeID:  r.EmployeeID.String(),
			Year:        period.Year,
			Month:       int(period.Month),
			RequestedBy: actorID,
			OccurredAt:  occurredAt,
		}
		outboxEvent, err := kafka.NewOutboxEvent(rid, "employee", event.EmployeeID, event.EventType, events.PayslipIssueRequestedTopic, event)
		if err != nil {
			return BulkIssueResponse{}, err
		}
		if err := outboxRepo.Create(ctx, outboxEvent); err != nil {
			logger.Error("bulk payslip outbox persist failed", zap.String("employee_id", event.EmployeeID), zap.Error(err))
			return BulkIssueResponse{}, apperror.Store(err, "outbox event", event.EmployeeID)
		}
		resp.Queued++
	}

	if err := tx.Commit(); err != nil {
		return BulkIssueResponse{}, apperror.Store(err, "outbox event", companyID)
	}

	logger.Info("bulk payslip issue queued",
		zap.String("company_id", companyID),
		zap.String("period", period.DisplayID()),
		zap.Int("queued", resp.Queued),
	)
	return resp, nil
}

func (s *service) History(ctx context.Context, companyID, employeeID string) ([]PayslipHistoryItem, error) {
	payslips, err := s.repo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		s.logger.Error("payslip history failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, apperror.Store(err, "payslip", employeeID)
	}

	sort.SliceStable(payslips, func(i, j int) bool {
		return payslips[i].Period().After(payslips[j].Period())
	})

	items := make([]PayslipHistoryItem, len(payslips))
	for i, p := range payslips {
		items[i] = PayslipHistoryItem{
			ID:              p.ID.String(),
			DisplayID:       p.DisplayID(),
			Year:            p.Year,
			Month:           p.Month,
			MonthName:       time.Month(p.Month).String(),
			Amount:          p.Amount,
			GrossPay:        p.GrossPay,
			TotalDeductions: p.TotalDeductions,
			GeneratedAt:     p.GeneratedAt,
		}
	}
	return items, nil
}

func (s *service) Download(ctx context.Context, companyID, id string) (PayslipDocument, error) {
	p, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayslipDocument{}, mapRepositoryError(err, id)
	}

	rows := []pdfLine{
		{Label: "Payslip " + p.DisplayID(), Heading: true},
		{Label: "Period", Value: fmt.Sprintf("%s %d", time.Month(p.Month).String(), p.Year)},
	}
	if p.Employee != nil {
		rows = append(rows,
			pdfLine{Label: "Employee", Value: p.Employee.FullName()},
			pdfLine{Label: "Employee No", Value: p.Employee.EmployeeNumber},
		)
	}

	if record, err := s.components.FindByEmployee(ctx, companyID, p.EmployeeID.String()); err == nil {
		rows = append(rows, componentRows(record.Components())...)
	}

	rows = append(rows,
		pdfLine{Label: "Summary", Heading: true},
		pdfLine{Label: "Gross Pay", Value: p.GrossPay.StringFixed(2)},
		pdfLine{Label: "Total Deductions", Value: p.TotalDeductions.StringFixed(2)},
		pdfLine{Label: "Net Pay", Value: p.Amount.StringFixed(2)},
		pdfLine{Label: "Generated At", Value: p.GeneratedAt.UTC().Format(time.RFC3339)},
	)

	return PayslipDocument{
		FileName: p.DisplayID() + ".pdf",
		Content:  renderPayslipPDF(rows),
	}, nil
}

func componentRows(c salary.Components) []pdfLine {
	a, d := c.Allowances, c.Deductions
	return []pdfLine{
		{Label: "Allowances", Heading: true},
		{Label: "Basic Salary", Value: a.BasicSalary.StringFixed(2)},
		{Label: "HRA", Value: a.HRA.StringFixed(2)},
		{Label: "Conveyance", Value: a.ConveyanceAllowance.StringFixed(2)},
		{Label: "Medical", Value: a.MedicalAllowance.StringFixed(2)},
		{Label: "Special", Value: a.SpecialAllowance.StringFixed(2)},
		{Label: "Other", Value: a.OtherAllowance.StringFixed(2)},
		{Label: "Deductions", Heading: true},
		{Label: "Income Tax", Value: d.IncomeTax.StringFixed(2)},
		{Label: "Provident Fund", Value: d.ProvidentFund.StringFixed(2)},
		{Label: "Professional Tax", Value: d.ProfessionalTax.StringFixed(2)},
		{Label: "ESI", Value: d.ESI.StringFixed(2)},
		{Label: "Loan", Value: d.LoanDeduction.StringFixed(2)},
		{Label: "Other", Value: d.OtherDeduction.StringFixed(2)},
	}
}

// resolvePeriod defaults to the month of now. An explicit period needs both
// parts, a month in 1..12 and must not lie after the current month.
func resolvePeriod(year, month *int, now time.Time) (Period, error) {
	current := CurrentPeriod(now)
	if year == nil && month == nil {
		return current, nil
	}
	if year == nil || month == nil || *month < 1 || *month > 12 || *year < 1 {
		return Period{}, paysliperrors.ErrInvalidPeriod
	}

	p := Period{Year: *year, Month: time.Month(*month)}
	if p.After(current) {
		return Period{}, paysliperrors.ErrFuturePeriod
	}
	return p, nil
}

func parseActor(actorID string) *uuid.UUID {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil
	}
	return &id
}

func mapToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:              p.ID.String(),
		DisplayID:       p.DisplayID(),
		CompanyID:       p.CompanyID.String(),
		EmployeeID:      p.EmployeeID.String(),
		Year:            p.Year,
		Month:           p.Month,
		Amount:          p.Amount,
		GrossPay:        p.GrossPay,
		TotalDeductions: p.TotalDeductions,
		GeneratedAt:     p.GeneratedAt,
	}
	if p.IssuedBy != nil {
		resp.IssuedBy = p.IssuedBy.String()
	}
	return resp
}
