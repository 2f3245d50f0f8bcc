package payslip

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, p *Payslip) error
	FindByEmployee(ctx context.Context, companyID string, employeeID string) ([]Payslip, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Payslip, error)
	FindByPeriod(ctx context.Context, companyID string, year, month int) ([]Payslip, error)
	EmployeeBelongsToCompany(ctx context.Context, companyID string, employeeID string) (bool, error)
	EmployeeHasBaseSalary(ctx context.Context, companyID string, employeeID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	db := r.db.Session(&gorm.Session{NewDB: true, SkipDefaultTransaction: true})
	db.Statement.ConnPool = tx
	return &repository{db: db}
}

// Upsert writes the payslip for its (employee, year, month). On conflict the
// existing row keeps its id and receives the new amounts; p.ID is refreshed
// from RETURNING so callers see the stored id.
func (r *repository) Upsert(ctx context.Context, p *Payslip) error {
	p.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "employee_id"}, {Name: "year"}, {Name: "month"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"amount",
					"gross_pay",
					"total_deductions",
					"generated_at",
					"issued_by",
					"updated_at",
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "id"}, {Name: "created_at"}}},
		).
		Create(p).Error
}

func (r *repository) FindByEmployee(ctx context.Context, companyID string, employeeID string) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("year DESC, month DESC").
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByPeriod(ctx context.Context, companyID string, year, month int) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("year = ? AND month = ?", year, month).
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID string, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Scopes(tenant.Scope(companyID)).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeHasBaseSalary(ctx context.Context, companyID string, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ? AND monthly_salary IS NOT NULL", employeeID).
		Scopes(tenant.Scope(companyID)).
		Count(&count).Error
	return count > 0, err
}
