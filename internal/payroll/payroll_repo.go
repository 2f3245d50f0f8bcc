package payroll

import (
	"context"

	"go-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	FindSummaries(ctx context.Context, companyID string, year, month int) ([]SummaryRow, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindSummaries(ctx context.Context, companyID string, year, month int) ([]SummaryRow, error) {
	var rows []SummaryRow
	err := r.db.WithContext(ctx).
		Table("salary_records AS sr").
		Select(`e.id AS employee_id, e.first_name, e.last_name, e.job_title, e.department,
			sr.basic_salary, sr.hra, sr.conveyance_allowance, sr.medical_allowance,
			sr.special_allowance, sr.other_allowance, sr.effective_date, p.id AS payslip_id`).
		Joins("JOIN employees e ON e.id = sr.employee_id AND e.company_id = sr.company_id AND e.monthly_salary IS NOT NULL").
		Joins("LEFT JOIN payslips p ON p.employee_id = sr.employee_id AND p.year = ? AND p.month = ?", year, month).
		Scopes(tenant.TableScope("sr", companyID)).
		Order("e.first_name ASC, e.last_name ASC").
		Scan(&rows).Error
	return rows, err
}
