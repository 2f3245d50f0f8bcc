package salary

import (
	"context"
	"errors"
	"time"

	"go-payroll/internal/employee"
	salaryerrors "go-payroll/internal/salary/errors"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	opInsert = "insert"
	opUpdate = "update"
	opDerive = "derive"
	opRemove = "remove"
)

// EmployeeSource is the slice of the employee store the synchronizer reads.
type EmployeeSource interface {
	FindSalariedByCompany(ctx context.Context, companyID string) ([]employee.Employee, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*employee.Employee, error)
}

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Synchronize(ctx context.Context, companyID string) (SyncResult, error)
	SyncEmployee(ctx context.Context, companyID, employeeID string) (SyncResult, error)
	GetAll(ctx context.Context, companyID string) ([]SalaryRecordResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID string) (SalaryRecordResponse, error)
	UpdateAdjustments(ctx context.Context, companyID, id string, req UpdateAdjustmentsRequest) (SalaryRecordResponse, error)
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
			s.logger = logger.Named("salary.service")
		}
	}
}

type service struct {
	repo      Repository
	employees EmployeeSource
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, employees EmployeeSource, opts ...Option) Service {
	s := &service{
		repo:      repo,
		employees: employees,
		now:       time.Now,
		logger:    zap.L().Named("salary.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type syncPlan struct {
	inserts  []SalaryRecord
	updates  []SalaryRecord
	removals []SalaryRecord
	result   SyncResult
}

func (s *service) Synchronize(ctx context.Context, companyID string) (SyncResult, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	logger.Debug("salary sync requested", zap.String("company_id", companyID))

	empls, err := s.employees.FindSalariedByCompany(ctx, companyID)
	if err != nil {
		logger.Error("salary sync load employees failed", zap.Error(err))
		return SyncResult{}, apperror.Store(err, "employee", companyID)
	}

	records, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		logger.Error("salary sync load records failed", zap.Error(err))
		return SyncResult{}, apperror.Store(err, "salary record", companyID)
	}

	existing := make(map[uuid.UUID]SalaryRecord, len(records))
	for _, r := range records {
		existing[r.EmployeeID] = r
	}

	plan := s.plan(empls, existing)
	result, err := s.apply(ctx, plan)

	logger.Info("salary sync finished",
		zap.String("company_id", companyID),
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
		zap.Int("unchanged", result.Unchanged),
		zap.Int("removed", result.Removed),
		zap.Int("failed", result.Failed),
	)
	return result, err
}

func (s *service) SyncEmployee(ctx context.Context, companyID, employeeID string) (SyncResult, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	empl, err := s.employees.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SyncResult{}, salaryerrors.ErrEmployeeNotFound
		}
		return SyncResult{}, apperror.Store(err, "employee", employeeID)
	}
	existing := map[uuid.UUID]SalaryRecord{}
	record, err := s.repo.FindByEmployee(ctx, companyID, employeeID)
	switch {
	case err == nil:
		existing[record.EmployeeID] = *record
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return SyncResult{}, apperror.Store(err, "salary record", employeeID)
	}

	if !empl.HasSalary() {
		logger.Debug("employee has no base salary", zap.String("employee_id", employeeID), zap.Int("records", len(existing)))
	}
	return s.apply(ctx, s.plan([]employee.Employee{*empl}, existing))
}

// plan decides per employee whether a record must be inserted, recomputed or
// left alone. Existing records of employees without a base salary are
// removed. It performs no I/O.
func (s *service) plan(empls []employee.Employee, existing map[uuid.UUID]SalaryRecord) syncPlan {
	var p syncPlan
	now := s.now().UTC()
	salaried := make(map[uuid.UUID]bool, len(empls))

	for _, e := range empls {
		if !e.HasSalary() {
			continue
		}
		salaried[e.ID] = true
		base := e.MonthlySalary.Decimal

		record, ok := existing[e.ID]
		if ok && !record.IsStale(base) {
			p.result.Unchanged++
			continue
		}

		components, err := Calculate(base)
		if err != nil {
			p.result.fail(e.ID.String(), opDerive, err)
			continue
		}

		if !ok {
			record = SalaryRecord{
				ID:            uuid.New(),
				CompanyID:     e.CompanyID,
				EmployeeID:    e.ID,
				EffectiveDate: e.JoinDate,
			}
			record.applyDerived(components)
			record.MonthlySalary = base
			p.inserts = append(p.inserts, record)
			continue
		}

		record.applyDerived(components)
		record.MonthlySalary = base
		record.EffectiveDate = now
		record.Employee = nil
		p.updates = append(p.updates, record)
	}

	for employeeID, record := range existing {
		if !salaried[employeeID] {
			p.removals = append(p.removals, record)
		}
	}

	return p
}

// apply writes a plan. Inserts go out as one batch; if the batch is rejected
// each row is retried on its own so one bad row cannot sink the rest.
// Updates and removals are written one by one.
func (s *service) apply(ctx context.Context, p syncPlan) (SyncResult, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	result := p.result

	if len(p.inserts) > 0 {
		if err := s.repo.UpsertBatch(ctx, p.inserts); err != nil {
			logger.Warn("salary batch insert failed, retrying per row",
				zap.Int("rows", len(p.inserts)),
				zap.Error(err),
			)
			for i := range p.inserts {
				if err := ctx.Err(); err != nil {
					return result, salaryerrors.ErrSyncAborted.WithCause(err)
				}
				rec := p.inserts[i]
				if err := s.repo.Upsert(ctx, &rec); err != nil {
					logger.Error("salary record insert failed",
						zap.String("employee_id", rec.EmployeeID.String()),
						zap.Error(err),
					)
					result.fail(rec.EmployeeID.String(), opInsert, err)
					continue
				}
				result.Inserted++
			}
		} else {
			result.Inserted += len(p.inserts)
		}
	}

	for i := range p.updates {
		if err := ctx.Err(); err != nil {
			return result, salaryerrors.ErrSyncAborted.WithCause(err)
		}
		rec := p.updates[i]
		if err := s.repo.UpdateDerived(ctx, &rec); err != nil {
			logger.Error("salary record update failed",
				zap.String("record_id", rec.ID.String()),
				zap.String("employee_id", rec.EmployeeID.String()),
				zap.Error(err),
			)
			result.fail(rec.EmployeeID.String(), opUpdate, err)
			continue
		}
		result.Updated++
	}

	for _, rec := range p.removals {
		if err := ctx.Err(); err != nil {
			return result, salaryerrors.ErrSyncAborted.WithCause(err)
		}
		if err := s.repo.DeleteByEmployee(ctx, rec.CompanyID.String(), rec.EmployeeID.String()); err != nil {
			logger.Error("salary record removal failed",
				zap.String("record_id", rec.ID.String()),
				zap.String("employee_id", rec.EmployeeID.String()),
				zap.Error(err),
			)
			result.fail(rec.EmployeeID.String(), opRemove, err)
			continue
		}
		result.Removed++
	}

	return result, nil
}

func (r *SyncResult) fail(employeeID, op string, err error) {
	r.Failed++
	r.Failures = append(r.Failures, SyncFailure{
		EmployeeID: employeeID,
		Operation:  op,
		Reason:     err.Error(),
	})
}

// Err returns ErrPartialSync carrying the result when any write failed.
func (r SyncResult) Err() error {
	if r.Failed == 0 {
		return nil
	}
	return salaryerrors.ErrPartialSync.WithDetails(r)
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]SalaryRecordResponse, error) {
	records, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get salary records failed", zap.Error(err))
		return nil, mapRepositoryError(err, companyID)
	}

	resp := make([]SalaryRecordResponse, len(records))
	for i, r := range records {
		resp[i] = mapToResponse(r)
	}
	return resp, nil
}

func (s *service) GetByEmployee(ctx context.Context, companyID, employeeID string) (SalaryRecordResponse, error) {
	record, err := s.repo.FindByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return SalaryRecordResponse{}, mapRepositoryError(err, employeeID)
	}
	return mapToResponse(*record), nil
}

func (s *service) UpdateAdjustments(
	ctx context.Context,
	companyID, id string,
	req UpdateAdjustmentsRequest,
) (SalaryRecordResponse, error) {
	for _, v := range []*decimal.Decimal{req.OtherAllowance, req.LoanDeduction, req.OtherDeduction} {
		if v != nil && v.IsNegative() {
			return SalaryRecordResponse{}, salaryerrors.ErrNegativeAdjustment
		}
	}

	record, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return SalaryRecordResponse{}, mapRepositoryError(err, id)
	}

	if req.OtherAllowance != nil {
		record.OtherAllowance = req.OtherAllowance.Round(2)
	}
	if req.LoanDeduction != nil {
		record.LoanDeduction = req.LoanDeduction.Round(2)
	}
	if req.OtherDeduction != nil {
		record.OtherDeduction = req.OtherDeduction.Round(2)
	}

	if err := s.repo.UpdateAdjustments(ctx, record); err != nil {
		s.logger.Error("update salary adjustments failed",
			zap.String("record_id", id),
			zap.Error(err),
		)
		return SalaryRecordResponse{}, mapRepositoryError(err, id)
	}

	s.logger.Info("salary adjustments updated", zap.String("record_id", id))
	return mapToResponse(*record), nil
}

func mapToResponse(r SalaryRecord) SalaryRecordResponse {
	c := r.Components()
	resp := SalaryRecordResponse{
		ID:              r.ID.String(),
		EmployeeID:      r.EmployeeID.String(),
		MonthlySalary:   r.MonthlySalary,
		Allowances:      c.Allowances,
		Deductions:      c.Deductions,
		GrossPay:        c.GrossPay(),
		TotalDeductions: c.TotalDeductions(),
		NetPay:          c.NetPay(),
		EffectiveDate:   r.EffectiveDate.Format("2006-01-02"),
	}
	if r.Employee != nil {
		resp.EmployeeName = r.Employee.FullName()
		resp.EmployeeNumber = r.Employee.EmployeeNumber
	}
	return resp
}
