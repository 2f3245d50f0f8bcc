package salary

import (
	"context"
	"go-payroll/internal/tenant"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	FindAllByCompany(ctx context.Context, companyID string) ([]SalaryRecord, error)
	FindByEmployee(ctx context.Context, companyID string, employeeID string) (*SalaryRecord, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*SalaryRecord, error)
	UpsertBatch(ctx context.Context, records []SalaryRecord) error
	Upsert(ctx context.Context, record *SalaryRecord) error
	UpdateDerived(ctx context.Context, record *SalaryRecord) error
	UpdateAdjustments(ctx context.Context, record *SalaryRecord) error
	DeleteByEmployee(ctx context.Context, companyID string, employeeID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByEmployee(ctx context.Context, companyID string, employeeID string) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		First(&record, "employee_id = ?", employeeID).Error
	return &record, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*SalaryRecord, error) {
	var record SalaryRecord
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		First(&record, "id = ?", id).Error
	return &record, err
}

func upsertClause() clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}},
		DoUpdates: clause.AssignmentColumns(derivedColumns),
	}
}

// UpsertBatch inserts all records in one statement. A concurrent writer that
// created the same employee's record first is overwritten, not duplicated.
func (r *repository) UpsertBatch(ctx context.Context, records []SalaryRecord) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(upsertClause()).
		Create(&records).Error
}

func (r *repository) Upsert(ctx context.Context, record *SalaryRecord) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(upsertClause()).
		Create(record).Error
}

func (r *repository) UpdateDerived(ctx context.Context, record *SalaryRecord) error {
	res := r.db.WithContext(ctx).
		Model(&SalaryRecord{}).
		Where("id = ?", record.ID).
		Scopes(tenant.Scope(record.CompanyID.String())).
		Updates(map[string]any{
			"monthly_salary":       record.MonthlySalary,
			"basic_salary":         record.BasicSalary,
			"hra":                  record.HRA,
			"conveyance_allowance": record.ConveyanceAllowance,
			"medical_allowance":    record.MedicalAllowance,
			"special_allowance":    record.SpecialAllowance,
			"income_tax":           record.IncomeTax,
			"provident_fund":       record.ProvidentFund,
			"professional_tax":     record.ProfessionalTax,
			"esi":                  record.ESI,
			"effective_date":       record.EffectiveDate,
			"updated_at":           time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) UpdateAdjustments(ctx context.Context, record *SalaryRecord) error {
	res := r.db.WithContext(ctx).
		Model(&SalaryRecord{}).
		Where("id = ?", record.ID).
		Scopes(tenant.Scope(record.CompanyID.String())).
		Updates(map[string]any{
			"other_allowance": record.OtherAllowance,
			"loan_deduction":  record.LoanDeduction,
			"other_deduction": record.OtherDeduction,
			"updated_at":      time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteByEmployee(ctx context.Context, companyID string, employeeID string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Delete(&SalaryRecord{}).Error
}
