package payroll

import (
	"context"
	"time"

	"go-payroll/internal/employee"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/salary"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Synchronizer brings salary records in line with employee base salaries.
type Synchronizer interface {
	Synchronize(ctx context.Context, companyID string) (salary.SyncResult, error)
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Refresh(ctx context.Context, companyID string) (Overview, error)
}

// DefaultRefreshTimeout bounds a shared refresh pass once it no longer
// follows any single caller's context.
const DefaultRefreshTimeout = 2 * time.Minute

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

func WithRefreshTimeout(d time.Duration) Option {
	return func(s *service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *service) {
		if logger != nil {
			s.logger = logger.Named("payroll.service")
		}
	}
}

type service struct {
	repo    Repository
	sync    Synchronizer
	sf      *singleflight.Group
	now     func() time.Time
	timeout time.Duration
	logger  *zap.Logger
}

func NewService(repo Repository, sync Synchronizer, opts ...Option) Service {
	s := &service{
		repo:    repo,
		sync:    sync,
		sf:      &singleflight.Group{},
		now:     time.Now,
		timeout: DefaultRefreshTimeout,
		logger:  zap.L().Named("payroll.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh runs a full synchronization pass for the company and then builds
// the salary view. Concurrent refreshes of one company share a single pass.
// The pass keeps the first caller's context values but not its cancellation,
// so one viewer leaving does not fail the others; a caller whose context
// ends only stops waiting and gets ErrRefreshAborted.
func (s *service) Refresh(ctx context.Context, companyID string) (Overview, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return Overview{}, payrollerrors.ErrInvalidCompanyID
	}

	ch := s.sf.DoChan(companyID, func() (interface{}, error) {
		passCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		return s.refresh(passCtx, companyID)
	})

	select {
	case <-ctx.Done():
		contextutil.GetLogger(ctx, s.logger).Warn("salary refresh abandoned",
			zap.String("company_id", companyID),
			zap.Error(ctx.Err()),
		)
		return Overview{}, payrollerrors.ErrRefreshAborted.WithCause(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return Overview{}, res.Err
		}
		return res.Val.(Overview), nil
	}
}

func (s *service) refresh(ctx context.Context, companyID string) (Overview, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	start := s.now()

	result, err := s.sync.Synchronize(ctx, companyID)
	if err != nil && ctx.Err() != nil {
		logger.Warn("salary refresh timed out", zap.String("company_id", companyID), zap.Error(err))
		return Overview{}, payrollerrors.ErrRefreshAborted.WithCause(err)
	}
	if err != nil {
		logger.Error("salary refresh sync failed", zap.String("company_id", companyID), zap.Error(err))
		return Overview{}, err
	}
	if err := ctx.Err(); err != nil {
		return Overview{}, payrollerrors.ErrRefreshAborted.WithCause(err)
	}

	period := s.now()
	rows, err := s.repo.FindSummaries(ctx, companyID, period.Year(), int(period.Month()))
	if err != nil {
		logger.Error("salary refresh load failed", zap.String("company_id", companyID), zap.Error(err))
		return Overview{}, apperror.Store(err, "salary summary", companyID)
	}

	overview := Overview{
		Year:      period.Year(),
		Month:     int(period.Month()),
		Employees: make([]SalarySummary, len(rows)),
		Sync:      result,
	}
	for i, row := range rows {
		overview.Employees[i] = toSummary(row)
	}

	logger.Info("salary refresh completed",
		zap.String("company_id", companyID),
		zap.Int("employees", len(rows)),
		zap.Int("sync_failed", result.Failed),
		zap.Duration("took", s.now().Sub(start)),
	)

	return overview, nil
}

func toSummary(row SummaryRow) SalarySummary {
	e := employee.Employee{FirstName: row.FirstName, LastName: row.LastName}
	allowances := salary.Allowances{
		BasicSalary:         row.BasicSalary,
		HRA:                 row.HRA,
		ConveyanceAllowance: row.ConveyanceAllowance,
		MedicalAllowance:    row.MedicalAllowance,
		SpecialAllowance:    row.SpecialAllowance,
		OtherAllowance:      row.OtherAllowance,
	}

	return SalarySummary{
		EmployeeID:    row.EmployeeID.String(),
		Name:          e.FullName(),
		Initials:      e.Initials(),
		Position:      row.JobTitle,
		Department:    row.Department,
		TotalSalary:   allowances.Total(),
		LastIncrement: row.EffectiveDate,
		Status:        row.Status(),
	}
}
